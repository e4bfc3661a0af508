package vim

import "github.com/abeckett/vimdown/internal/engine/motion"

// motionForKey maps a single normal-mode key to its motion. The '0' key
// only reaches this table when no count is active; with a count pending
// it is a digit.
func motionForKey(r rune) (motion.Motion, bool) {
	var k motion.Kind

	switch r {
	case 'h':
		k = motion.KindLeft
	case 'l':
		k = motion.KindRight
	case 'k':
		k = motion.KindUp
	case 'j':
		k = motion.KindDown
	case 'w':
		k = motion.KindWordForward
	case 'b':
		k = motion.KindWordBackward
	case 'e':
		k = motion.KindWordEnd
	case '0':
		k = motion.KindLineStart
	case '$':
		k = motion.KindLineEnd
	case '^':
		k = motion.KindFirstNonBlank
	case '{':
		k = motion.KindParagraphBackward
	case '}':
		k = motion.KindParagraphForward
	case '%':
		k = motion.KindMatchPair
	case 'G':
		k = motion.KindDocumentEnd
	default:
		return motion.Motion{}, false
	}

	return motion.Motion{Kind: k}, true
}

// objectForKey maps the key after i/a to a text object. 'b' and 'B' are
// the paren and brace aliases; open and close delimiters both select the
// same pair.
func objectForKey(r rune, inner bool) (motion.TextObject, bool) {
	switch r {
	case 'w':
		return motion.Word(inner), true
	case '"', '\'', '`':
		return motion.Quote(r, inner), true
	case '(', ')', 'b':
		return motion.Pair('(', ')', inner), true
	case '{', '}', 'B':
		return motion.Pair('{', '}', inner), true
	case '[', ']':
		return motion.Pair('[', ']', inner), true
	default:
		return motion.TextObject{}, false
	}
}
