package motion

// Kind identifies a motion.
type Kind uint8

const (
	// KindNone is the zero value, not a motion.
	KindNone Kind = iota

	// Directional motions.
	KindLeft
	KindRight
	KindUp
	KindDown

	// Word motions.
	KindWordForward
	KindWordBackward
	KindWordEnd

	// Line motions.
	KindLineStart
	KindLineEnd
	KindFirstNonBlank

	// Document motions.
	KindDocumentStart
	KindDocumentEnd

	// Paragraph motions.
	KindParagraphForward
	KindParagraphBackward

	// KindMatchPair jumps between matching delimiters.
	KindMatchPair

	// Character search motions; the target character rides on the Motion.
	KindFindChar
	KindTillChar
)

// String returns the motion kind's name.
func (k Kind) String() string {
	switch k {
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindUp:
		return "up"
	case KindDown:
		return "down"
	case KindWordForward:
		return "wordForward"
	case KindWordBackward:
		return "wordBackward"
	case KindWordEnd:
		return "wordEnd"
	case KindLineStart:
		return "lineStart"
	case KindLineEnd:
		return "lineEnd"
	case KindFirstNonBlank:
		return "firstNonBlank"
	case KindDocumentStart:
		return "documentStart"
	case KindDocumentEnd:
		return "documentEnd"
	case KindParagraphForward:
		return "paragraphForward"
	case KindParagraphBackward:
		return "paragraphBackward"
	case KindMatchPair:
		return "matchPair"
	case KindFindChar:
		return "findChar"
	case KindTillChar:
		return "tillChar"
	default:
		return "none"
	}
}

// Motion describes a cursor movement. Char is the search target for
// find/till motions and unused otherwise.
type Motion struct {
	Kind Kind
	Char rune
}

// Find returns a find-character motion.
func Find(c rune) Motion {
	return Motion{Kind: KindFindChar, Char: c}
}

// Till returns a till-character motion.
func Till(c rune) Motion {
	return Motion{Kind: KindTillChar, Char: c}
}

// Inclusive reports whether an operator range over this motion includes the
// character the motion lands on.
func (m Motion) Inclusive() bool {
	switch m.Kind {
	case KindWordEnd, KindLineEnd, KindMatchPair, KindFindChar, KindTillChar:
		return true
	}
	return false
}

// ObjectKind identifies a text object family.
type ObjectKind uint8

const (
	// ObjectWord is the word under the cursor (iw/aw).
	ObjectWord ObjectKind = iota

	// ObjectQuote is a span delimited by a single repeated character,
	// such as quotes or backticks.
	ObjectQuote

	// ObjectPair is a span delimited by a bracket pair.
	ObjectPair
)

// TextObject describes a structural span around the cursor.
type TextObject struct {
	Kind ObjectKind

	// Inner selects the contents only; otherwise the delimiters (or
	// trailing whitespace, for words) are included.
	Inner bool

	// Open and Close are the delimiters for quote and pair objects.
	// Quote objects use the same character for both.
	Open  rune
	Close rune
}

// Word returns the word text object.
func Word(inner bool) TextObject {
	return TextObject{Kind: ObjectWord, Inner: inner}
}

// Quote returns a quote-style text object for the given delimiter.
func Quote(delim rune, inner bool) TextObject {
	return TextObject{Kind: ObjectQuote, Inner: inner, Open: delim, Close: delim}
}

// Pair returns a paired-delimiter text object.
func Pair(open, close rune, inner bool) TextObject {
	return TextObject{Kind: ObjectPair, Inner: inner, Open: open, Close: close}
}
