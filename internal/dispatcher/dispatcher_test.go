package dispatcher

import (
	"testing"
	"unicode/utf8"

	"github.com/abeckett/vimdown/internal/config"
	"github.com/abeckett/vimdown/internal/engine/buffer"
	"github.com/abeckett/vimdown/internal/input/key"
	"github.com/abeckett/vimdown/internal/input/vim"
)

// editor wires a machine and dispatcher together the way the app does.
type editor struct {
	m *vim.Machine
	d *Dispatcher
}

func newEditor(text string) *editor {
	return &editor{
		m: vim.NewMachine(),
		d: New(buffer.FromString(text), config.Default()),
	}
}

// press feeds plain character keys, routing passthrough text into the
// buffer like the app's input loop.
func (e *editor) press(t *testing.T, keys string) {
	t.Helper()
	for _, r := range keys {
		res := e.m.HandleKey(key.NewRuneEvent(r, key.ModNone))
		if res.Kind == vim.ResultPassthrough {
			if err := e.d.InsertText(string(r)); err != nil {
				t.Fatalf("InsertText(%q): %v", r, err)
			}
			continue
		}
		if err := e.d.Apply(res); err != nil {
			t.Fatalf("Apply after %q: %v", r, err)
		}
	}
}

func (e *editor) escape(t *testing.T) {
	t.Helper()
	res := e.m.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if err := e.d.Apply(res); err != nil {
		t.Fatalf("Apply escape: %v", err)
	}
}

func (e *editor) text() string {
	return e.d.Buffer().Text()
}

func TestDeleteLines(t *testing.T) {
	e := newEditor("l1\nl2\nl3\nl4\nl5\n")
	e.press(t, "3dd")

	if e.text() != "l4\nl5\n" {
		t.Errorf("text = %q, want %q", e.text(), "l4\nl5\n")
	}
	if e.d.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", e.d.Cursor())
	}

	reg := e.d.Register()
	if reg.Text != "l1\nl2\nl3\n" || !reg.Linewise {
		t.Errorf("register = %+v, want line-wise deleted lines", reg)
	}
}

func TestDeleteWords(t *testing.T) {
	e := newEditor("alpha beta gamma")
	e.press(t, "d2w")

	if e.text() != "gamma" {
		t.Errorf("text = %q, want %q", e.text(), "gamma")
	}
	if got := e.d.Register().Text; got != "alpha beta " {
		t.Errorf("register = %q, want %q", got, "alpha beta ")
	}
}

func TestDeleteCharUpdatesRegister(t *testing.T) {
	e := newEditor("abc")
	e.press(t, "x")

	if e.text() != "bc" {
		t.Errorf("text = %q, want %q", e.text(), "bc")
	}
	if e.d.Register().Text != "a" {
		t.Errorf("register = %q, want %q", e.d.Register().Text, "a")
	}

	e.press(t, "2x")
	if e.text() != "" {
		t.Errorf("text = %q, want empty", e.text())
	}
}

func TestDeleteCharStopsAtLineEnd(t *testing.T) {
	e := newEditor("ab\ncd")
	e.press(t, "9x")

	if e.text() != "\ncd" {
		t.Errorf("text = %q, want %q", e.text(), "\ncd")
	}
}

func TestDeleteInnerWord(t *testing.T) {
	e := newEditor("foo bar baz")
	e.d.SetCursor(5)
	e.press(t, "diw")

	if e.text() != "foo  baz" {
		t.Errorf("text = %q, want %q", e.text(), "foo  baz")
	}
	if e.d.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", e.d.Cursor())
	}
}

func TestChangeInsideParens(t *testing.T) {
	e := newEditor("f(abc)d")
	e.d.SetCursor(3)
	e.press(t, "ci(")

	if e.m.Mode() != vim.ModeInsert {
		t.Fatalf("mode = %v, want insert", e.m.Mode())
	}
	if e.text() != "f()d" {
		t.Errorf("text after change = %q, want %q", e.text(), "f()d")
	}

	e.press(t, "xy")
	e.escape(t)

	if e.text() != "f(xy)d" {
		t.Errorf("text = %q, want %q", e.text(), "f(xy)d")
	}

	// The delete and the typed text undo as one unit.
	e.press(t, "u")
	if e.text() != "f(abc)d" {
		t.Errorf("text after undo = %q, want %q", e.text(), "f(abc)d")
	}
}

func TestYankAndPasteCharwise(t *testing.T) {
	e := newEditor("ab")
	e.press(t, "x")

	if e.text() != "b" {
		t.Fatalf("text = %q, want %q", e.text(), "b")
	}

	e.press(t, "p")
	if e.text() != "ba" {
		t.Errorf("text = %q, want %q", e.text(), "ba")
	}
	if e.d.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.d.Cursor())
	}
}

func TestPasteLinewise(t *testing.T) {
	e := newEditor("l1\nl2\n")
	e.press(t, "yy")

	reg := e.d.Register()
	if reg.Text != "l1\n" || !reg.Linewise {
		t.Fatalf("register = %+v, want line-wise l1", reg)
	}

	e.press(t, "p")
	if e.text() != "l1\nl1\nl2\n" {
		t.Errorf("after p text = %q, want %q", e.text(), "l1\nl1\nl2\n")
	}
	if e.d.Cursor() != 3 {
		t.Errorf("cursor = %d, want start of pasted line", e.d.Cursor())
	}
}

func TestPasteLinewiseBefore(t *testing.T) {
	e := newEditor("l1\nl2\n")
	e.press(t, "jyyP")

	if e.text() != "l1\nl2\nl2\n" {
		t.Errorf("text = %q, want %q", e.text(), "l1\nl2\nl2\n")
	}
}

func TestPasteLinewiseAtLastLineWithoutNewline(t *testing.T) {
	e := newEditor("l1\nl2")
	e.press(t, "yyjp")

	if e.text() != "l1\nl2\nl1" {
		t.Errorf("text = %q, want %q", e.text(), "l1\nl2\nl1")
	}
}

func TestPasteWithCountRepeats(t *testing.T) {
	e := newEditor("a")
	e.press(t, "x3p")

	if e.text() != "aaa" {
		t.Errorf("text = %q, want %q", e.text(), "aaa")
	}
}

func TestReplaceChar(t *testing.T) {
	e := newEditor("abc")
	e.press(t, "rz")

	if e.text() != "zbc" {
		t.Errorf("text = %q, want %q", e.text(), "zbc")
	}

	e.press(t, "3rq")
	if e.text() != "qqq" {
		t.Errorf("text = %q, want %q", e.text(), "qqq")
	}
}

func TestReplaceCharInsufficientRoom(t *testing.T) {
	e := newEditor("ab")
	e.press(t, "3rz")

	if e.text() != "ab" {
		t.Errorf("text = %q, replace past line end must not edit", e.text())
	}
}

func TestJoinLines(t *testing.T) {
	e := newEditor("foo\n  bar\nbaz")
	e.press(t, "J")

	if e.text() != "foo bar\nbaz" {
		t.Errorf("text = %q, want %q", e.text(), "foo bar\nbaz")
	}
	if e.d.Cursor() != 3 {
		t.Errorf("cursor = %d, want at join point", e.d.Cursor())
	}

	e.press(t, "J")
	if e.text() != "foo bar baz" {
		t.Errorf("text = %q, want %q", e.text(), "foo bar baz")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := newEditor("l1\nl2\n")
	e.press(t, "dd")

	if e.text() != "l2\n" {
		t.Fatalf("text = %q, want %q", e.text(), "l2\n")
	}

	e.press(t, "u")
	if e.text() != "l1\nl2\n" {
		t.Errorf("after undo text = %q, want %q", e.text(), "l1\nl2\n")
	}

	res := e.m.HandleKey(key.NewRuneEvent('r', key.ModCtrl))
	if err := e.d.Apply(res); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if e.text() != "l2\n" {
		t.Errorf("after redo text = %q, want %q", e.text(), "l2\n")
	}
}

func TestVisualDelete(t *testing.T) {
	e := newEditor("foo bar")
	e.press(t, "ved")

	if e.text() != " bar" {
		t.Errorf("text = %q, want %q", e.text(), " bar")
	}
	if e.d.Register().Text != "foo" {
		t.Errorf("register = %q, want %q", e.d.Register().Text, "foo")
	}
}

func TestVisualLineDelete(t *testing.T) {
	e := newEditor("l1\nl2\nl3")
	e.press(t, "Vjd")

	if e.text() != "l3" {
		t.Errorf("text = %q, want %q", e.text(), "l3")
	}

	reg := e.d.Register()
	if reg.Text != "l1\nl2\n" || !reg.Linewise {
		t.Errorf("register = %+v, want line-wise two lines", reg)
	}
}

func TestVisualSingleCharDelete(t *testing.T) {
	e := newEditor("abc")
	e.press(t, "vd")

	if e.text() != "bc" {
		t.Errorf("text = %q, collapsed selection must still cover one char", e.text())
	}
}

func TestIndentAndOutdent(t *testing.T) {
	e := newEditor("a\nb\n")
	e.press(t, ">>")

	if e.text() != "    a\nb\n" {
		t.Errorf("after >> text = %q, want %q", e.text(), "    a\nb\n")
	}

	e.press(t, "<<")
	if e.text() != "a\nb\n" {
		t.Errorf("after << text = %q, want %q", e.text(), "a\nb\n")
	}
}

func TestIndentMotionCoversTouchedLines(t *testing.T) {
	e := newEditor("a\nb\n\nc\n")
	e.press(t, ">}")

	if e.text() != "    a\n    b\n\nc\n" {
		t.Errorf("text = %q, want paragraph lines indented", e.text())
	}
}

func TestOutdentMixedIndentation(t *testing.T) {
	e := newEditor("\tx\n  y\n")
	e.press(t, "Vj<")

	if e.text() != "x\ny\n" {
		t.Errorf("text = %q, want %q", e.text(), "x\ny\n")
	}
}

func TestOpenLineAndDotRepeat(t *testing.T) {
	e := newEditor("one")
	e.press(t, "o")
	e.press(t, "abc")
	e.escape(t)

	if e.text() != "one\nabc" {
		t.Fatalf("text = %q, want %q", e.text(), "one\nabc")
	}

	e.press(t, ".")
	if e.text() != "one\nabc\nabc" {
		t.Errorf("after dot text = %q, want %q", e.text(), "one\nabc\nabc")
	}

	// The replay undoes as one unit.
	e.press(t, "u")
	if e.text() != "one\nabc" {
		t.Errorf("after undo text = %q, want %q", e.text(), "one\nabc")
	}
}

func TestDotRepeatsChange(t *testing.T) {
	e := newEditor("foo bar")
	e.press(t, "cw")
	e.press(t, "xy")
	e.escape(t)

	if e.text() != "xy bar" {
		t.Fatalf("text = %q, want %q", e.text(), "xy bar")
	}

	e.press(t, "w.")
	if e.text() != "xy xy" {
		t.Errorf("after dot text = %q, want %q", e.text(), "xy xy")
	}
}

func TestDotWithNoHistoryIsNoOp(t *testing.T) {
	e := newEditor("abc")
	e.press(t, ".")

	if e.text() != "abc" {
		t.Errorf("text = %q, dot without history must not edit", e.text())
	}
}

func TestMotionThatCannotMoveIsNoOp(t *testing.T) {
	e := newEditor("abc")
	e.press(t, "db")

	if e.text() != "abc" {
		t.Errorf("text = %q, backward word at offset 0 must not edit", e.text())
	}
}

func TestInsertSessionUndoesAsOneUnit(t *testing.T) {
	e := newEditor("x")
	e.press(t, "a")
	e.press(t, "hello")
	e.escape(t)

	if e.text() != "xhello" {
		t.Fatalf("text = %q, want %q", e.text(), "xhello")
	}

	e.press(t, "u")
	if e.text() != "x" {
		t.Errorf("after undo text = %q, want %q", e.text(), "x")
	}
}

func TestBackspaceInInsertMode(t *testing.T) {
	e := newEditor("")
	e.press(t, "i")
	e.press(t, "abx")
	if err := e.d.Backspace(); err != nil {
		t.Fatal(err)
	}
	e.press(t, "c")
	e.escape(t)

	if e.text() != "abc" {
		t.Errorf("text = %q, want %q", e.text(), "abc")
	}
}

func TestSearchForwardWraps(t *testing.T) {
	e := newEditor("foo bar foo")

	if !e.d.Search("foo") {
		t.Fatal("search failed")
	}
	if e.d.Cursor() != 8 {
		t.Errorf("cursor = %d, want next occurrence at 8", e.d.Cursor())
	}

	if !e.d.Search("foo") {
		t.Fatal("wrapped search failed")
	}
	if e.d.Cursor() != 0 {
		t.Errorf("cursor = %d, want wrapped to 0", e.d.Cursor())
	}

	if e.d.Search("missing") {
		t.Error("search for absent term must fail")
	}
}

func TestFindMotionDelete(t *testing.T) {
	e := newEditor("abcabc")
	e.press(t, "dfb")

	// Inclusive: the landed character goes too.
	if e.text() != "cabc" {
		t.Errorf("text = %q, want %q", e.text(), "cabc")
	}
}

func TestDeleteToLineEnd(t *testing.T) {
	e := newEditor("hello world\nnext")
	e.d.SetCursor(5)
	e.press(t, "d$")

	if e.text() != "hello\nnext" {
		t.Errorf("text = %q, want %q", e.text(), "hello\nnext")
	}
}

func TestDeleteAfterVerticalMotionKeepsValidText(t *testing.T) {
	e := newEditor("abcd\nαβγ")
	e.d.SetCursor(3)
	e.press(t, "jx")

	if e.text() != "abcd\nαγ" {
		t.Errorf("text = %q, want %q", e.text(), "abcd\nαγ")
	}
	if !utf8.ValidString(e.text()) {
		t.Errorf("text %q is not valid UTF-8", e.text())
	}
	if got := e.d.Register().Text; got != "β" {
		t.Errorf("register = %q, want %q", got, "β")
	}
}

func TestVisualToggleKeepsAnchor(t *testing.T) {
	e := newEditor("ab\ncd\nef\n")
	e.press(t, "vjVd")

	if e.text() != "ef\n" {
		t.Errorf("text = %q, want %q", e.text(), "ef\n")
	}
	if got := e.d.Register(); got.Text != "ab\ncd\n" || !got.Linewise {
		t.Errorf("register = %+v, want line-wise deleted lines", got)
	}
}

func TestSelectionRangePerMode(t *testing.T) {
	e := newEditor("ab\ncd\n")
	e.press(t, "vj")

	if rng, ok := e.d.Selection(false); !ok || rng.Start != 0 || rng.End != 4 {
		t.Errorf("charwise selection = %+v (%v), want [0,4)", rng, ok)
	}
	if rng, ok := e.d.Selection(true); !ok || rng.Start != 0 || rng.End != 6 {
		t.Errorf("linewise selection = %+v (%v), want [0,6)", rng, ok)
	}

	e.escape(t)
	if _, ok := e.d.Selection(false); ok {
		t.Error("selection must clear on leaving visual mode")
	}
}
