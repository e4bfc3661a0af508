package dispatcher

import (
	"strings"

	"github.com/abeckett/vimdown/internal/config"
	"github.com/abeckett/vimdown/internal/engine/buffer"
	"github.com/abeckett/vimdown/internal/engine/history"
	"github.com/abeckett/vimdown/internal/engine/motion"
	"github.com/abeckett/vimdown/internal/input/vim"
)

// Dispatcher executes state machine results against a buffer. It owns
// the cursor, the yank register, the visual anchor and the undo history.
//
// Dispatcher is not safe for concurrent use. The host drives it from the
// same goroutine that feeds the state machine.
type Dispatcher struct {
	buf  *buffer.Buffer
	hist *history.History
	opts config.EditorOptions

	cursor buffer.ByteOffset
	reg    Register

	anchor       buffer.ByteOffset
	anchorActive bool
}

// New creates a dispatcher over the given buffer.
func New(buf *buffer.Buffer, opts config.Options) *Dispatcher {
	return &Dispatcher{
		buf:  buf,
		hist: history.New(opts.History.MaxUndo),
		opts: opts.Editor,
	}
}

// Buffer returns the buffer under edit.
func (d *Dispatcher) Buffer() *buffer.Buffer {
	return d.buf
}

// Cursor returns the current cursor offset.
func (d *Dispatcher) Cursor() buffer.ByteOffset {
	return d.cursor
}

// SetCursor moves the cursor, clamped to the buffer.
func (d *Dispatcher) SetCursor(off buffer.ByteOffset) {
	d.cursor = clampOffset(off, d.buf.Len())
}

// Register returns the yank register contents.
func (d *Dispatcher) Register() Register {
	return d.reg
}

// UpdateOptions applies reloaded editor settings. The undo depth is
// fixed at construction.
func (d *Dispatcher) UpdateOptions(opts config.Options) {
	d.opts = opts.Editor
}

// Selection returns the active visual range in buffer offsets, or false
// when no selection is active. Linewise selections cover whole lines
// with their newlines.
func (d *Dispatcher) Selection(linewise bool) (buffer.Range, bool) {
	if !d.anchorActive {
		return buffer.Range{}, false
	}
	return d.selectionRange(linewise), true
}

// Apply executes one state machine result. Results that resolve to
// nothing (a motion that cannot move, an object with no match, paste
// from an empty register) are silent no-ops.
func (d *Dispatcher) Apply(res vim.Result) error {
	switch res.Kind {
	case vim.ResultPending, vim.ResultPassthrough, vim.ResultSearchForward:
		// Pending keys need no action; passthrough text and search input
		// arrive via InsertText and Search.
		return nil

	case vim.ResultModeChange:
		d.applyModeChange(res.Mode)
		return nil

	case vim.ResultMotion:
		d.cursor = motion.Target(d.buf.Text(), d.cursor, res.Motion, res.Count)
		return nil

	case vim.ResultOperatorMotion:
		mo := res.Motion
		// cw changes through the end of the word, not to the next
		// word's start.
		if res.Op == vim.OpChange && mo.Kind == motion.KindWordForward && d.cursorOnNonBlank() {
			mo = motion.Motion{Kind: motion.KindWordEnd}
		}
		rng := motion.RangeOf(d.buf.Text(), d.cursor, mo, res.Count)
		return d.applyOperator(res.Op, rng, false)

	case vim.ResultOperatorLine:
		rng := motion.LineSpan(d.buf.Text(), d.cursor, res.Count)
		return d.applyOperator(res.Op, rng, true)

	case vim.ResultOperatorObject:
		rng, ok := motion.ObjectRange(d.buf.Text(), d.cursor, res.Object)
		if !ok {
			// The machine already switched to insert for a change; open
			// the group so any typed text still undoes as one unit.
			if res.Op.EntersInsert() {
				d.hist.BeginGroup()
			}
			return nil
		}
		return d.applyOperator(res.Op, rng, false)

	case vim.ResultOperatorSelection:
		rng := d.selectionRange(res.Linewise)
		d.anchorActive = false
		return d.applyOperator(res.Op, rng, res.Linewise)

	case vim.ResultDeleteChar:
		return d.deleteCharForward(res.Count)

	case vim.ResultDeleteCharBack:
		return d.deleteCharBackward(res.Count)

	case vim.ResultReplaceChar:
		return d.replaceChars(res.Char, res.Count)

	case vim.ResultJoinLines:
		return d.joinLines(res.Count)

	case vim.ResultPasteAfter:
		return d.paste(res.Count, true)

	case vim.ResultPasteBefore:
		return d.paste(res.Count, false)

	case vim.ResultInsertAfterCursor:
		d.hist.BeginGroup()
		d.cursor = d.cursorRight()
		return nil

	case vim.ResultInsertAtLineEnd:
		d.hist.BeginGroup()
		d.cursor = d.buf.LineEndOffset(d.currentLine())
		return nil

	case vim.ResultInsertAtLineStart:
		d.hist.BeginGroup()
		d.cursor = motion.Target(d.buf.Text(), d.cursor, motion.Motion{Kind: motion.KindFirstNonBlank}, 1)
		return nil

	case vim.ResultOpenLineBelow:
		d.hist.BeginGroup()
		end := d.buf.LineEndOffset(d.currentLine())
		return d.insertAt(end, "\n", end+1)

	case vim.ResultOpenLineAbove:
		d.hist.BeginGroup()
		start := d.buf.LineStartOffset(d.currentLine())
		return d.insertAt(start, "\n", start)

	case vim.ResultUndo:
		cur, err := d.hist.Undo(d.buf)
		if err != nil {
			return err
		}
		d.SetCursor(cur)
		return nil

	case vim.ResultRedo:
		cur, err := d.hist.Redo(d.buf)
		if err != nil {
			return err
		}
		d.SetCursor(cur)
		return nil

	case vim.ResultRepeatLastChange:
		return d.repeatChange(res.Change)

	case vim.ResultReplayInsert:
		return d.InsertText(res.Text)

	default:
		return nil
	}
}

// applyModeChange tracks the selection anchor and insert grouping across
// mode switches.
func (d *Dispatcher) applyModeChange(mode vim.Mode) {
	switch {
	case mode == vim.ModeInsert:
		d.hist.BeginGroup()
	case mode.IsVisual():
		// Toggling between visual kinds keeps the original anchor.
		if !d.anchorActive {
			d.anchor = d.cursor
			d.anchorActive = true
		}
	default:
		d.hist.EndGroup()
		d.anchorActive = false
	}
}

// repeatChange replays the recorded change at the current cursor.
func (d *Dispatcher) repeatChange(change *vim.Recorded) error {
	if change == nil {
		return nil
	}

	if err := d.Apply(change.Result); err != nil {
		return err
	}
	if change.InsertText != "" {
		if err := d.InsertText(change.InsertText); err != nil {
			return err
		}
	}

	// Replays never see the Escape that usually closes the group.
	d.hist.EndGroup()
	return nil
}

// InsertText inserts text at the cursor, as insert-mode typing does.
func (d *Dispatcher) InsertText(text string) error {
	if text == "" {
		return nil
	}
	return d.insertAt(d.cursor, text, d.cursor+buffer.ByteOffset(len(text)))
}

// Backspace removes the rune before the cursor, crossing line
// boundaries. At offset zero it is a no-op.
func (d *Dispatcher) Backspace() error {
	if d.cursor == 0 {
		return nil
	}

	text := d.buf.Text()
	start := prevRuneStart(text, d.cursor)
	return d.replaceRange(buffer.Range{Start: start, End: d.cursor}, "", start)
}

// Search moves the cursor to the next occurrence of term after the
// cursor, wrapping around the buffer. Returns false when term does not
// occur.
func (d *Dispatcher) Search(term string) bool {
	if term == "" {
		return false
	}

	text := d.buf.Text()
	from := int(d.cursor) + 1
	if from > len(text) {
		from = len(text)
	}

	if idx := strings.Index(text[from:], term); idx >= 0 {
		d.cursor = buffer.ByteOffset(from + idx)
		return true
	}
	if idx := strings.Index(text[:from], term); idx >= 0 {
		d.cursor = buffer.ByteOffset(idx)
		return true
	}
	return false
}

// cursorOnNonBlank reports whether the cursor sits on a character that
// is not whitespace or a line ending.
func (d *Dispatcher) cursorOnNonBlank() bool {
	text := d.buf.Text()
	if int(d.cursor) >= len(text) {
		return false
	}
	c := text[d.cursor]
	return c != ' ' && c != '\t' && c != '\n'
}

// currentLine returns the line the cursor is on.
func (d *Dispatcher) currentLine() int {
	return d.buf.OffsetToPoint(d.cursor).Line
}

// cursorRight returns the offset one rune right of the cursor, stopping
// at the end of the line.
func (d *Dispatcher) cursorRight() buffer.ByteOffset {
	text := d.buf.Text()
	if int(d.cursor) >= len(text) || text[d.cursor] == '\n' {
		return d.cursor
	}
	_, size := d.buf.RuneAt(d.cursor)
	return d.cursor + buffer.ByteOffset(size)
}

// selectionRange converts the anchor and cursor into an edit range. The
// character under the far end is included; line-wise selections expand
// to whole lines with their newlines.
func (d *Dispatcher) selectionRange(linewise bool) buffer.Range {
	if !d.anchorActive {
		return buffer.EmptyRange(d.cursor)
	}

	start, end := d.anchor, d.cursor
	if end < start {
		start, end = end, start
	}

	if linewise {
		spanStart := d.buf.LineStartOffset(d.buf.OffsetToPoint(start).Line)
		spanEnd := d.buf.LineEndOffset(d.buf.OffsetToPoint(end).Line)
		if spanEnd < d.buf.Len() {
			spanEnd++
		}
		return buffer.Range{Start: spanStart, End: spanEnd}
	}

	text := d.buf.Text()
	if int(end) < len(text) && text[end] != '\n' {
		_, size := d.buf.RuneAt(end)
		end += buffer.ByteOffset(size)
	}
	return buffer.Range{Start: start, End: end}
}

func clampOffset(off, max buffer.ByteOffset) buffer.ByteOffset {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
