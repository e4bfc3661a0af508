package history

import (
	"errors"
	"testing"

	"github.com/abeckett/vimdown/internal/engine/buffer"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	buf := buffer.FromString("hello world")

	// Delete "world".
	old, err := buf.Delete(buffer.Range{Start: 5, End: 11})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	h := New(0)
	h.Push(Edit{Start: 5, Old: old, New: "", CursorBefore: 6, CursorAfter: 4})

	cur, err := h.Undo(buf)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.Text() != "hello world" {
		t.Errorf("after undo text = %q, want %q", buf.Text(), "hello world")
	}
	if cur != 6 {
		t.Errorf("undo cursor = %d, want 6", cur)
	}

	cur, err = h.Redo(buf)
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if buf.Text() != "hello" {
		t.Errorf("after redo text = %q, want %q", buf.Text(), "hello")
	}
	if cur != 4 {
		t.Errorf("redo cursor = %d, want 4", cur)
	}
}

func TestUndoEmptyStack(t *testing.T) {
	h := New(10)
	if _, err := h.Undo(buffer.New()); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(buffer.New()); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("err = %v, want ErrNothingToRedo", err)
	}
}

func TestPushClearsRedoStack(t *testing.T) {
	buf := buffer.FromString("abc")

	h := New(10)
	if _, err := buf.Delete(buffer.Range{Start: 2, End: 3}); err != nil {
		t.Fatal(err)
	}
	h.Push(Edit{Start: 2, Old: "c"})

	if _, err := h.Undo(buf); err != nil {
		t.Fatal(err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	if err := buf.Insert(3, "x"); err != nil {
		t.Fatal(err)
	}
	h.Push(Edit{Start: 3, New: "x"})

	if h.CanRedo() {
		t.Error("new edit must clear the redo stack")
	}
}

func TestMaxEntriesDropsOldest(t *testing.T) {
	buf := buffer.New()

	h := New(3)
	for i := 0; i < 5; i++ {
		if err := buf.Insert(buffer.ByteOffset(i), "a"); err != nil {
			t.Fatal(err)
		}
		h.Push(Edit{Start: buffer.ByteOffset(i), New: "a"})
	}

	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

func TestInsertEditRoundTrip(t *testing.T) {
	buf := buffer.FromString("ab")

	if err := buf.Insert(1, "XY"); err != nil {
		t.Fatal(err)
	}

	h := New(10)
	h.Push(Edit{Start: 1, Old: "", New: "XY", CursorBefore: 1, CursorAfter: 3})

	if _, err := h.Undo(buf); err != nil {
		t.Fatal(err)
	}
	if buf.Text() != "ab" {
		t.Errorf("after undo text = %q, want %q", buf.Text(), "ab")
	}

	if _, err := h.Redo(buf); err != nil {
		t.Fatal(err)
	}
	if buf.Text() != "aXYb" {
		t.Errorf("after redo text = %q, want %q", buf.Text(), "aXYb")
	}
}

func TestGroupUndoesAsOneUnit(t *testing.T) {
	buf := buffer.FromString("line\n")

	h := New(10)
	h.BeginGroup()

	// Open a line below, then type into it.
	if err := buf.Insert(4, "\n"); err != nil {
		t.Fatal(err)
	}
	h.Push(Edit{Start: 4, New: "\n", CursorBefore: 0, CursorAfter: 5})

	if err := buf.Insert(5, "abc"); err != nil {
		t.Fatal(err)
	}
	h.Push(Edit{Start: 5, New: "abc", CursorBefore: 5, CursorAfter: 8})

	h.EndGroup()

	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1 group", h.Len())
	}

	cur, err := h.Undo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Text() != "line\n" {
		t.Errorf("after undo text = %q, want %q", buf.Text(), "line\n")
	}
	if cur != 0 {
		t.Errorf("undo cursor = %d, want 0", cur)
	}

	cur, err = h.Redo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Text() != "line\n\nabc" {
		t.Errorf("after redo text = %q, want %q", buf.Text(), "line\n\nabc")
	}
	if cur != 8 {
		t.Errorf("redo cursor = %d, want 8", cur)
	}
}

func TestEmptyGroupIsDropped(t *testing.T) {
	h := New(10)
	h.BeginGroup()
	h.EndGroup()
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestClear(t *testing.T) {
	h := New(10)
	h.Push(Edit{New: "a"})
	h.Clear()
	if h.CanUndo() || h.CanRedo() || h.Len() != 0 {
		t.Error("Clear must drop both stacks")
	}
}
