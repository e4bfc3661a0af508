package motion

import (
	"github.com/abeckett/vimdown/internal/engine/buffer"
)

// ObjectRange resolves a text object at the cursor into a byte range.
// The second return value is false when the object has no match (missing
// delimiter, empty buffer).
func ObjectRange(text string, off buffer.ByteOffset, obj TextObject) (buffer.Range, bool) {
	if len(text) == 0 {
		return buffer.Range{}, false
	}
	max := buffer.ByteOffset(len(text))
	if off >= max {
		off = prevRuneStart(text, max)
	}
	if off < 0 {
		off = 0
	}

	switch obj.Kind {
	case ObjectWord:
		return wordObject(text, off, obj.Inner), true
	case ObjectQuote:
		return quoteObject(text, off, obj.Open, obj.Inner)
	case ObjectPair:
		return pairObject(text, off, obj.Open, obj.Close, obj.Inner)
	default:
		return buffer.Range{}, false
	}
}

// wordObject expands outward from the cursor while the character class
// matches. The around form also consumes trailing horizontal whitespace.
func wordObject(text string, off buffer.ByteOffset, inner bool) buffer.Range {
	max := buffer.ByteOffset(len(text))
	r, _ := runeAt(text, off)
	cls := classOf(r)

	start := off
	for start > 0 {
		p := prevRuneStart(text, start)
		pr, _ := runeAt(text, p)
		if classOf(pr) != cls {
			break
		}
		start = p
	}

	end := off
	for end < max {
		er, size := runeAt(text, end)
		if classOf(er) != cls {
			break
		}
		end += buffer.ByteOffset(size)
	}

	if !inner {
		// Trailing spaces and tabs belong to the around form; newlines
		// never do.
		for end < max && (text[end] == ' ' || text[end] == '\t') {
			end++
		}
	}

	return buffer.Range{Start: start, End: end}
}

// quoteObject finds the nearest unescaped delimiter at or before the
// cursor, then its partner after it. Either side missing means no object.
func quoteObject(text string, off buffer.ByteOffset, delim rune, inner bool) (buffer.Range, bool) {
	open := buffer.ByteOffset(-1)
	for p := off; ; p = prevRuneStart(text, p) {
		r, _ := runeAt(text, p)
		if r == delim && !isEscaped(text, p) {
			open = p
			break
		}
		if p == 0 {
			break
		}
	}
	if open < 0 {
		return buffer.Range{}, false
	}

	closing := buffer.ByteOffset(-1)
	max := buffer.ByteOffset(len(text))
	for p := open + runeSize(text, open); p < max; {
		r, size := runeAt(text, p)
		if r == delim && !isEscaped(text, p) {
			closing = p
			break
		}
		p += buffer.ByteOffset(size)
	}
	if closing < 0 {
		return buffer.Range{}, false
	}

	if inner {
		return buffer.Range{Start: open + runeSize(text, open), End: closing}, true
	}
	return buffer.Range{Start: open, End: closing + runeSize(text, closing)}, true
}

func isEscaped(text string, off buffer.ByteOffset) bool {
	return off > 0 && text[off-1] == '\\'
}

// pairObject finds the innermost delimiter pair enclosing the cursor,
// skipping nested pairs by depth counting.
func pairObject(text string, off buffer.ByteOffset, open, close rune, inner bool) (buffer.Range, bool) {
	openPos := buffer.ByteOffset(-1)

	if r, _ := runeAt(text, off); r == open {
		openPos = off
	} else {
		depth := 0
		for p := off; p > 0; {
			p = prevRuneStart(text, p)
			switch r, _ := runeAt(text, p); r {
			case close:
				depth++
			case open:
				if depth == 0 {
					openPos = p
				} else {
					depth--
				}
			}
			if openPos >= 0 {
				break
			}
		}
	}
	if openPos < 0 {
		return buffer.Range{}, false
	}

	closePos := buffer.ByteOffset(-1)
	max := buffer.ByteOffset(len(text))
	depth := 0
	for p := openPos + runeSize(text, openPos); p < max; {
		r, size := runeAt(text, p)
		switch r {
		case open:
			depth++
		case close:
			if depth == 0 {
				closePos = p
			} else {
				depth--
			}
		}
		if closePos >= 0 {
			break
		}
		p += buffer.ByteOffset(size)
	}
	if closePos < 0 {
		return buffer.Range{}, false
	}

	if inner {
		return buffer.Range{Start: openPos + runeSize(text, openPos), End: closePos}, true
	}
	return buffer.Range{Start: openPos, End: closePos + runeSize(text, closePos)}, true
}
