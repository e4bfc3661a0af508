package motion

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abeckett/vimdown/internal/engine/buffer"
)

// Target resolves a motion to a new cursor offset. Counts above one re-run
// the single-step computation; a step that cannot move leaves the offset
// unchanged and stops the iteration.
func Target(text string, off buffer.ByteOffset, m Motion, count int) buffer.ByteOffset {
	off = clamp(off, buffer.ByteOffset(len(text)))
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		next, moved := step(text, off, m)
		if !moved {
			break
		}
		off = next
	}
	return off
}

// RangeOf resolves a motion into the byte range an operator affects.
// Inclusive motions extend the range through the character they land on.
// A motion that cannot move yields an empty range at the cursor.
func RangeOf(text string, off buffer.ByteOffset, m Motion, count int) buffer.Range {
	off = clamp(off, buffer.ByteOffset(len(text)))
	if count < 1 {
		count = 1
	}

	target := off
	moved := false
	for i := 0; i < count; i++ {
		next, ok := step(text, target, m)
		if !ok {
			break
		}
		target = next
		moved = true
	}
	if !moved {
		return buffer.EmptyRange(off)
	}

	var r buffer.Range
	switch {
	case target > off:
		r = buffer.Range{Start: off, End: target}
		if m.Inclusive() {
			r.End += runeSize(text, target)
		}
	default:
		r = buffer.Range{Start: target, End: off}
		if m.Inclusive() {
			// Backward inclusive motions (d%) take the cursor character too.
			r.End += runeSize(text, off)
		}
	}
	return r.Clamp(buffer.ByteOffset(len(text)))
}

// LineSpan returns the whole-line range for count lines starting at the
// cursor's line, including line terminators, clamped at the buffer end.
func LineSpan(text string, off buffer.ByteOffset, count int) buffer.Range {
	max := buffer.ByteOffset(len(text))
	off = clamp(off, max)
	if count < 1 {
		count = 1
	}

	start := lineStartAt(text, off)
	end := start
	for i := 0; i < count; i++ {
		le := lineEndAt(text, end)
		if le >= max {
			end = max
			break
		}
		end = le + 1 // include the newline
	}
	return buffer.Range{Start: start, End: end}
}

// step performs one application of the motion. The second return value is
// false when the motion cannot move (buffer edge, no match).
func step(text string, off buffer.ByteOffset, m Motion) (buffer.ByteOffset, bool) {
	switch m.Kind {
	case KindLeft:
		return stepLeft(text, off)
	case KindRight:
		return stepRight(text, off)
	case KindUp:
		return vertical(text, off, -1)
	case KindDown:
		return vertical(text, off, +1)
	case KindWordForward:
		return wordForward(text, off)
	case KindWordBackward:
		return wordBackward(text, off)
	case KindWordEnd:
		return wordEnd(text, off)
	case KindLineStart:
		return moveResult(off, lineStartAt(text, off))
	case KindLineEnd:
		return moveResult(off, lastCharOfLine(text, off))
	case KindFirstNonBlank:
		return moveResult(off, firstNonBlank(text, off))
	case KindDocumentStart:
		return moveResult(off, 0)
	case KindDocumentEnd:
		return moveResult(off, lineStartAt(text, buffer.ByteOffset(len(text))))
	case KindParagraphForward:
		return moveResult(off, paragraphForward(text, off))
	case KindParagraphBackward:
		return moveResult(off, paragraphBackward(text, off))
	case KindMatchPair:
		return matchPair(text, off)
	case KindFindChar:
		return findChar(text, off, m.Char, false)
	case KindTillChar:
		return findChar(text, off, m.Char, true)
	default:
		return off, false
	}
}

func moveResult(from, to buffer.ByteOffset) (buffer.ByteOffset, bool) {
	return to, to != from
}

// charClass partitions characters into whitespace, word characters
// (alphanumeric or underscore) and everything else.
type charClass uint8

const (
	classWhitespace charClass = iota
	classWord
	classPunct
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

func stepLeft(text string, off buffer.ByteOffset) (buffer.ByteOffset, bool) {
	if off <= 0 {
		return off, false
	}
	p := prevRuneStart(text, off)
	if text[p] == '\n' {
		// Stay on the current line.
		return off, false
	}
	return p, true
}

func stepRight(text string, off buffer.ByteOffset) (buffer.ByteOffset, bool) {
	max := buffer.ByteOffset(len(text))
	if off >= max || text[off] == '\n' {
		return off, false
	}
	next := off + runeSize(text, off)
	if next >= max || text[next] == '\n' {
		return off, false
	}
	return next, true
}

// vertical moves one line up or down, keeping the byte column where the
// target line is long enough.
func vertical(text string, off buffer.ByteOffset, delta int) (buffer.ByteOffset, bool) {
	ls := lineStartAt(text, off)
	col := off - ls

	var targetStart buffer.ByteOffset
	if delta < 0 {
		if ls == 0 {
			return off, false
		}
		targetStart = lineStartAt(text, ls-1)
	} else {
		le := lineEndAt(text, off)
		if int(le) >= len(text) {
			return off, false
		}
		targetStart = le + 1
	}

	target := targetStart + col
	if end := lineEndAt(text, targetStart); target > end {
		target = end
	}
	// The byte column may fall inside a multibyte rune on the target
	// line; snap back to the rune start.
	for target > targetStart && int(target) < len(text) && !utf8.RuneStart(text[target]) {
		target--
	}
	return target, true
}

func wordForward(text string, off buffer.ByteOffset) (buffer.ByteOffset, bool) {
	max := buffer.ByteOffset(len(text))
	if off >= max {
		return off, false
	}

	r, _ := runeAt(text, off)
	cls := classOf(r)

	pos := off
	if cls != classWhitespace {
		// Skip the run under the cursor.
		for pos < max {
			r, size := runeAt(text, pos)
			if classOf(r) != cls {
				break
			}
			pos += buffer.ByteOffset(size)
		}
	}
	// Skip whitespace to the next run's start.
	for pos < max {
		r, size := runeAt(text, pos)
		if !unicode.IsSpace(r) {
			break
		}
		pos += buffer.ByteOffset(size)
	}
	return pos, pos != off
}

func wordBackward(text string, off buffer.ByteOffset) (buffer.ByteOffset, bool) {
	if off <= 0 {
		return off, false
	}

	pos := prevRuneStart(text, off)

	// Skip whitespace behind the cursor.
	for pos > 0 {
		r, _ := runeAt(text, pos)
		if !unicode.IsSpace(r) {
			break
		}
		pos = prevRuneStart(text, pos)
	}

	r, _ := runeAt(text, pos)
	if unicode.IsSpace(r) {
		// Nothing but whitespace back to the buffer start.
		return 0, off != 0
	}

	// Walk to the start of this run.
	cls := classOf(r)
	for pos > 0 {
		p := prevRuneStart(text, pos)
		r, _ := runeAt(text, p)
		if classOf(r) != cls {
			break
		}
		pos = p
	}
	return pos, pos != off
}

// wordEnd advances one position, skips whitespace, then runs to the last
// character of the next same-class run.
func wordEnd(text string, off buffer.ByteOffset) (buffer.ByteOffset, bool) {
	max := buffer.ByteOffset(len(text))
	if off >= max {
		return off, false
	}

	pos := off + runeSize(text, off)
	for pos < max {
		r, size := runeAt(text, pos)
		if !unicode.IsSpace(r) {
			break
		}
		pos += buffer.ByteOffset(size)
	}
	if pos >= max {
		return off, false
	}

	r, _ := runeAt(text, pos)
	cls := classOf(r)
	for {
		size := runeSize(text, pos)
		next := pos + buffer.ByteOffset(size)
		if next >= max {
			break
		}
		nr, _ := runeAt(text, next)
		if classOf(nr) != cls {
			break
		}
		pos = next
	}
	return pos, true
}

func lastCharOfLine(text string, off buffer.ByteOffset) buffer.ByteOffset {
	ls := lineStartAt(text, off)
	le := lineEndAt(text, off)
	if le == ls {
		return ls
	}
	return prevRuneStart(text, le)
}

func firstNonBlank(text string, off buffer.ByteOffset) buffer.ByteOffset {
	ls := lineStartAt(text, off)
	le := lineEndAt(text, off)
	pos := ls
	for pos < le {
		if c := text[pos]; c != ' ' && c != '\t' {
			return pos
		}
		pos++
	}
	if le > ls {
		return prevRuneStart(text, le)
	}
	return ls
}

func paragraphForward(text string, off buffer.ByteOffset) buffer.ByteOffset {
	cur := lineStartAt(text, off)

	// Skip the run the cursor is in, then the complementary run; the line
	// after that run is the next paragraph boundary.
	cur, ok := skipLineRun(text, cur, isBlankLine(text, cur), +1)
	if !ok {
		return cur
	}
	cur, _ = skipLineRun(text, cur, isBlankLine(text, cur), +1)
	return cur
}

func paragraphBackward(text string, off buffer.ByteOffset) buffer.ByteOffset {
	cur := lineStartAt(text, off)

	cur, ok := skipLineRun(text, cur, isBlankLine(text, cur), -1)
	if !ok {
		return cur
	}
	// Walk to the top of the complementary run.
	blank := isBlankLine(text, cur)
	for {
		p, ok := adjacentLineStart(text, cur, -1)
		if !ok || isBlankLine(text, p) != blank {
			return cur
		}
		cur = p
	}
}

// skipLineRun advances line by line while the blankness matches, returning
// the start of the first line of the complementary run. ok is false when
// the buffer edge was hit first.
func skipLineRun(text string, ls buffer.ByteOffset, blank bool, dir int) (buffer.ByteOffset, bool) {
	cur := ls
	for {
		next, ok := adjacentLineStart(text, cur, dir)
		if !ok {
			return cur, false
		}
		if isBlankLine(text, next) != blank {
			return next, true
		}
		cur = next
	}
}

func adjacentLineStart(text string, ls buffer.ByteOffset, dir int) (buffer.ByteOffset, bool) {
	if dir < 0 {
		if ls == 0 {
			return ls, false
		}
		return lineStartAt(text, ls-1), true
	}
	le := lineEndAt(text, ls)
	if int(le) >= len(text) {
		return ls, false
	}
	return le + 1, true
}

func isBlankLine(text string, ls buffer.ByteOffset) bool {
	le := lineEndAt(text, ls)
	return strings.TrimSpace(text[ls:le]) == ""
}

// matchPair jumps to the delimiter matching the one under the cursor.
// It only triggers when the cursor is on one of (){}[].
func matchPair(text string, off buffer.ByteOffset) (buffer.ByteOffset, bool) {
	if int(off) >= len(text) {
		return off, false
	}
	r, _ := runeAt(text, off)

	var match rune
	var forward bool
	switch r {
	case '(':
		match, forward = ')', true
	case ')':
		match, forward = '(', false
	case '[':
		match, forward = ']', true
	case ']':
		match, forward = '[', false
	case '{':
		match, forward = '}', true
	case '}':
		match, forward = '{', false
	default:
		return off, false
	}

	depth := 1
	if forward {
		pos := off + runeSize(text, off)
		for int(pos) < len(text) {
			c, size := runeAt(text, pos)
			switch c {
			case r:
				depth++
			case match:
				depth--
				if depth == 0 {
					return pos, true
				}
			}
			pos += buffer.ByteOffset(size)
		}
	} else {
		pos := off
		for pos > 0 {
			pos = prevRuneStart(text, pos)
			c, _ := runeAt(text, pos)
			switch c {
			case r:
				depth++
			case match:
				depth--
				if depth == 0 {
					return pos, true
				}
			}
		}
	}
	return off, false
}

// findChar scans strictly after the cursor for the target character.
// till lands one position before the match. No match means no movement.
func findChar(text string, off buffer.ByteOffset, target rune, till bool) (buffer.ByteOffset, bool) {
	max := buffer.ByteOffset(len(text))
	if off >= max {
		return off, false
	}

	pos := off + runeSize(text, off)
	for pos < max {
		r, size := runeAt(text, pos)
		if r == target {
			if till {
				pos = prevRuneStart(text, pos)
			}
			if pos == off {
				return off, false
			}
			return pos, true
		}
		pos += buffer.ByteOffset(size)
	}
	return off, false
}

// Low-level text helpers.

func clamp(off, max buffer.ByteOffset) buffer.ByteOffset {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}

func runeAt(text string, off buffer.ByteOffset) (rune, int) {
	if off < 0 || int(off) >= len(text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(text[off:])
}

func runeSize(text string, off buffer.ByteOffset) buffer.ByteOffset {
	if off < 0 || int(off) >= len(text) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(text[off:])
	return buffer.ByteOffset(size)
}

func prevRuneStart(text string, off buffer.ByteOffset) buffer.ByteOffset {
	if off <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:off])
	return off - buffer.ByteOffset(size)
}

// lineStartAt scans back to the byte after the previous newline.
func lineStartAt(text string, off buffer.ByteOffset) buffer.ByteOffset {
	off = clamp(off, buffer.ByteOffset(len(text)))
	for off > 0 && text[off-1] != '\n' {
		off--
	}
	return off
}

// lineEndAt scans forward to the next newline (or the buffer end).
func lineEndAt(text string, off buffer.ByteOffset) buffer.ByteOffset {
	max := buffer.ByteOffset(len(text))
	off = clamp(off, max)
	for off < max && text[off] != '\n' {
		off++
	}
	return off
}
