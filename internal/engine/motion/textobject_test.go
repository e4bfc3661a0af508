package motion

import (
	"testing"

	"github.com/abeckett/vimdown/internal/engine/buffer"
)

func TestWordObject(t *testing.T) {
	//      0123456789012
	text := "foo bar baz"

	tests := []struct {
		name string
		off  buffer.ByteOffset
		obj  TextObject
		want buffer.Range
	}{
		{"iw inside bar", 5, Word(true), buffer.Range{Start: 4, End: 7}},
		{"iw at word start", 4, Word(true), buffer.Range{Start: 4, End: 7}},
		{"iw at word end", 6, Word(true), buffer.Range{Start: 4, End: 7}},
		{"aw takes one trailing space run", 5, Word(false), buffer.Range{Start: 4, End: 8}},
		{"aw on last word has no trailing", 9, Word(false), buffer.Range{Start: 8, End: 11}},
		{"iw on whitespace selects the run", 3, Word(true), buffer.Range{Start: 3, End: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ObjectRange(text, tt.off, tt.obj)
			if !ok {
				t.Fatal("ObjectRange returned no match")
			}
			if got != tt.want {
				t.Errorf("ObjectRange = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWordObjectPunctuationRun(t *testing.T) {
	text := "foo...bar"
	got, ok := ObjectRange(text, 4, Word(true))
	if !ok {
		t.Fatal("no match")
	}
	if got != (buffer.Range{Start: 3, End: 6}) {
		t.Errorf("iw on punctuation = %+v, want {3 6}", got)
	}
}

func TestWordObjectDoesNotTakeNewline(t *testing.T) {
	text := "foo\nbar"
	got, ok := ObjectRange(text, 1, Word(false))
	if !ok {
		t.Fatal("no match")
	}
	// Around stops at the newline.
	if got != (buffer.Range{Start: 0, End: 3}) {
		t.Errorf("aw before newline = %+v, want {0 3}", got)
	}
}

func TestQuoteObject(t *testing.T) {
	//      0123456789012
	text := `say "hello" x`

	inner, ok := ObjectRange(text, 7, Quote('"', true))
	if !ok {
		t.Fatal("inner quote: no match")
	}
	if inner != (buffer.Range{Start: 5, End: 10}) {
		t.Errorf(`i" = %+v, want {5 10}`, inner)
	}

	around, ok := ObjectRange(text, 7, Quote('"', false))
	if !ok {
		t.Fatal("around quote: no match")
	}
	if around != (buffer.Range{Start: 4, End: 11}) {
		t.Errorf(`a" = %+v, want {4 11}`, around)
	}
}

func TestQuoteObjectOnDelimiter(t *testing.T) {
	text := `"ab"`
	got, ok := ObjectRange(text, 0, Quote('"', true))
	if !ok {
		t.Fatal("no match")
	}
	if got != (buffer.Range{Start: 1, End: 3}) {
		t.Errorf(`i" on opening quote = %+v, want {1 3}`, got)
	}
}

func TestQuoteObjectSkipsEscaped(t *testing.T) {
	//      0 12345 678 90
	text := `a "b\"c" d`

	got, ok := ObjectRange(text, 6, Quote('"', true))
	if !ok {
		t.Fatal("no match")
	}
	if got != (buffer.Range{Start: 3, End: 7}) {
		t.Errorf(`i" with escape = %+v, want {3 7}`, got)
	}
}

func TestQuoteObjectMissingSide(t *testing.T) {
	if _, ok := ObjectRange(`no quotes here`, 3, Quote('"', true)); ok {
		t.Error("expected no match without delimiters")
	}
	if _, ok := ObjectRange(`one " only`, 7, Quote('"', true)); ok {
		t.Error("expected no match with unclosed quote")
	}
}

func TestPairObject(t *testing.T) {
	//      012345678
	text := "f(a(b)c)d"

	tests := []struct {
		name string
		off  buffer.ByteOffset
		obj  TextObject
		want buffer.Range
	}{
		{"innermost pair from inside", 4, Pair('(', ')', true), buffer.Range{Start: 4, End: 5}},
		{"outer pair from between", 2, Pair('(', ')', true), buffer.Range{Start: 2, End: 7}},
		{"around includes delimiters", 4, Pair('(', ')', false), buffer.Range{Start: 3, End: 6}},
		{"cursor on opener", 3, Pair('(', ')', true), buffer.Range{Start: 4, End: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ObjectRange(text, tt.off, tt.obj)
			if !ok {
				t.Fatal("ObjectRange returned no match")
			}
			if got != tt.want {
				t.Errorf("ObjectRange = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPairObjectBraces(t *testing.T) {
	text := "x { a { b } c } y"
	got, ok := ObjectRange(text, 8, Pair('{', '}', true))
	if !ok {
		t.Fatal("no match")
	}
	if got != (buffer.Range{Start: 7, End: 10}) {
		t.Errorf("i{ nested = %+v, want {7 10}", got)
	}
}

func TestPairObjectNoEnclosingPair(t *testing.T) {
	if _, ok := ObjectRange("plain text", 3, Pair('(', ')', true)); ok {
		t.Error("expected no match without parens")
	}
	if _, ok := ObjectRange("before (after)", 2, Pair('(', ')', true)); ok {
		t.Error("expected no match when cursor is outside the pair")
	}
}

func TestObjectRangeEmptyBuffer(t *testing.T) {
	if _, ok := ObjectRange("", 0, Word(true)); ok {
		t.Error("expected no match in empty buffer")
	}
}
