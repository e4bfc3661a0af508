package dispatcher

import (
	"strings"
	"unicode/utf8"

	"github.com/abeckett/vimdown/internal/engine/buffer"
	"github.com/abeckett/vimdown/internal/engine/history"
	"github.com/abeckett/vimdown/internal/input/vim"
)

// applyOperator runs an operator over a resolved range. The range is
// clamped to the buffer first; an empty range is a no-op.
func (d *Dispatcher) applyOperator(op vim.Operator, rng buffer.Range, linewise bool) error {
	rng = rng.Clamp(d.buf.Len())

	// Change keeps its edits grouped with the insert session that
	// follows, whether or not the range resolves.
	if op.EntersInsert() {
		d.hist.BeginGroup()
	}

	if rng.IsEmpty() {
		return nil
	}

	switch op {
	case vim.OpYank:
		d.reg = Register{Text: d.buf.TextRange(rng), Linewise: linewise}
		d.cursor = rng.Start
		return nil

	case vim.OpDelete:
		d.reg = Register{Text: d.buf.TextRange(rng), Linewise: linewise}
		if err := d.replaceRange(rng, "", rng.Start); err != nil {
			return err
		}
		d.SetCursor(rng.Start)
		return nil

	case vim.OpChange:
		// A line-wise change keeps the final newline so typing resumes
		// on an empty line instead of joining with the next one.
		if linewise && rng.End > rng.Start && d.buf.TextRange(buffer.Range{Start: rng.End - 1, End: rng.End}) == "\n" {
			rng.End--
		}
		d.reg = Register{Text: d.buf.TextRange(rng), Linewise: linewise}
		if rng.IsEmpty() {
			return nil
		}
		return d.replaceRange(rng, "", rng.Start)

	case vim.OpIndent:
		return d.shiftLines(rng, 1)

	case vim.OpOutdent:
		return d.shiftLines(rng, -1)

	default:
		return nil
	}
}

// replaceRange performs one invertible mutation: the history entry, the
// cursor move and the buffer edit stay consistent.
func (d *Dispatcher) replaceRange(rng buffer.Range, text string, after buffer.ByteOffset) error {
	before := d.cursor

	old, err := d.buf.Replace(rng, text)
	if err != nil {
		return err
	}

	d.hist.Push(history.Edit{
		Start:        rng.Start,
		Old:          old,
		New:          text,
		CursorBefore: before,
		CursorAfter:  after,
	})
	d.cursor = after
	return nil
}

func (d *Dispatcher) insertAt(off buffer.ByteOffset, text string, after buffer.ByteOffset) error {
	return d.replaceRange(buffer.EmptyRange(off), text, after)
}

// deleteCharForward implements x: up to count runes from the cursor,
// never past the end of the line.
func (d *Dispatcher) deleteCharForward(count int) error {
	span := charSpanForward(d.buf.Text(), d.cursor, count)
	if span.IsEmpty() {
		return nil
	}

	d.reg = Register{Text: d.buf.TextRange(span)}
	return d.replaceRange(span, "", span.Start)
}

// deleteCharBackward implements X: up to count runes before the cursor,
// never past the start of the line.
func (d *Dispatcher) deleteCharBackward(count int) error {
	span := charSpanBackward(d.buf.Text(), d.cursor, count)
	if span.IsEmpty() {
		return nil
	}

	d.reg = Register{Text: d.buf.TextRange(span)}
	return d.replaceRange(span, "", span.Start)
}

// replaceChars implements r: overwrite count runes with ch. When fewer
// than count runes remain on the line nothing happens.
func (d *Dispatcher) replaceChars(ch rune, count int) error {
	text := d.buf.Text()
	span := charSpanForward(text, d.cursor, count)

	if runeCount(text[span.Start:span.End]) < count {
		return nil
	}

	repl := strings.Repeat(string(ch), count)

	// Cursor lands on the last replaced character.
	after := span.Start + buffer.ByteOffset((count-1)*utf8.RuneLen(ch))
	return d.replaceRange(span, repl, after)
}

// joinLines implements J: splice the next line onto the current one with
// a single space, dropping its leading indentation.
func (d *Dispatcher) joinLines(count int) error {
	for i := 0; i < count; i++ {
		line := d.currentLine()
		if line >= d.buf.LineCount()-1 {
			return nil
		}

		text := d.buf.Text()
		lineEnd := d.buf.LineEndOffset(line)

		j := lineEnd + 1
		for int(j) < len(text) && (text[j] == ' ' || text[j] == '\t') {
			j++
		}

		sep := " "
		if int(j) >= len(text) || text[j] == '\n' {
			sep = ""
		}

		if err := d.replaceRange(buffer.Range{Start: lineEnd, End: j}, sep, lineEnd); err != nil {
			return err
		}
	}
	return nil
}

// paste implements p and P. Count repeats the register text. Line-wise
// text goes onto its own line below or above the cursor line; character
// text goes after or before the cursor rune.
func (d *Dispatcher) paste(count int, after bool) error {
	if d.reg.IsEmpty() {
		return nil
	}

	body := strings.Repeat(d.reg.Text, count)

	if d.reg.Linewise {
		return d.pasteLinewise(body, after)
	}

	at := d.cursor
	if after {
		at = d.cursorRight()
	}

	// Cursor lands on the last pasted character.
	_, lastSize := utf8.DecodeLastRuneInString(body)
	dst := at + buffer.ByteOffset(len(body)-lastSize)
	return d.insertAt(at, body, dst)
}

func (d *Dispatcher) pasteLinewise(body string, after bool) error {
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	line := d.currentLine()

	if !after {
		at := d.buf.LineStartOffset(line)
		return d.insertAt(at, body, at)
	}

	end := d.buf.LineEndOffset(line)
	if end < d.buf.Len() {
		// Past the newline, onto the next line start.
		at := end + 1
		return d.insertAt(at, body, at)
	}

	// Last line without a trailing newline: open one first.
	body = "\n" + strings.TrimSuffix(body, "\n")
	return d.insertAt(end, body, end+1)
}

// shiftLines indents (dir > 0) or outdents (dir < 0) every line the
// range touches, as a single undoable edit.
func (d *Dispatcher) shiftLines(rng buffer.Range, dir int) error {
	startLine := d.buf.OffsetToPoint(rng.Start).Line

	last := rng.End
	if last > rng.Start {
		last--
	}
	endLine := d.buf.OffsetToPoint(last).Line

	spanStart := d.buf.LineStartOffset(startLine)
	spanEnd := d.buf.LineEndOffset(endLine)

	lines := strings.Split(d.buf.TextRange(buffer.Range{Start: spanStart, End: spanEnd}), "\n")
	unit := d.opts.IndentUnit()

	for i, line := range lines {
		if dir > 0 {
			if line != "" {
				lines[i] = unit + line
			}
		} else {
			lines[i] = outdentLine(line, d.opts.IndentWidth)
		}
	}

	joined := strings.Join(lines, "\n")
	return d.replaceRange(buffer.Range{Start: spanStart, End: spanEnd}, joined, spanStart)
}

// outdentLine strips one level of leading indentation: a tab, or up to
// width spaces.
func outdentLine(line string, width int) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}

	n := 0
	for n < width && n < len(line) && line[n] == ' ' {
		n++
	}
	return line[n:]
}

// charSpanForward covers up to count runes starting at off, stopping at
// the newline or end of text.
func charSpanForward(text string, off buffer.ByteOffset, count int) buffer.Range {
	end := off
	for i := 0; i < count; i++ {
		if int(end) >= len(text) || text[end] == '\n' {
			break
		}
		_, size := utf8.DecodeRuneInString(text[end:])
		end += buffer.ByteOffset(size)
	}
	return buffer.Range{Start: off, End: end}
}

// charSpanBackward covers up to count runes ending at off, stopping at
// the line start.
func charSpanBackward(text string, off buffer.ByteOffset, count int) buffer.Range {
	start := off
	for i := 0; i < count; i++ {
		if start <= 0 {
			break
		}
		prev := prevRuneStart(text, start)
		if text[prev] == '\n' {
			break
		}
		start = prev
	}
	return buffer.Range{Start: start, End: off}
}

// prevRuneStart returns the offset of the rune preceding off.
func prevRuneStart(text string, off buffer.ByteOffset) buffer.ByteOffset {
	if off <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:off])
	return off - buffer.ByteOffset(size)
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
