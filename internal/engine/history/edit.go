package history

import "github.com/abeckett/vimdown/internal/engine/buffer"

// Edit is one invertible buffer mutation: the text Old at Start was
// replaced with New. Inserts have an empty Old, deletes an empty New.
type Edit struct {
	// Start is the byte offset the replacement happened at.
	Start buffer.ByteOffset

	// Old is the text the edit removed.
	Old string

	// New is the text the edit inserted.
	New string

	// CursorBefore is the cursor position before the edit.
	CursorBefore buffer.ByteOffset

	// CursorAfter is the cursor position after the edit.
	CursorAfter buffer.ByteOffset
}

// Revert undoes the edit against the buffer and returns the cursor
// position to restore.
func (e Edit) Revert(buf *buffer.Buffer) (buffer.ByteOffset, error) {
	r := buffer.Range{Start: e.Start, End: e.Start + buffer.ByteOffset(len(e.New))}
	if _, err := buf.Replace(r, e.Old); err != nil {
		return 0, err
	}
	return e.CursorBefore, nil
}

// Reapply redoes the edit against the buffer and returns the cursor
// position to restore.
func (e Edit) Reapply(buf *buffer.Buffer) (buffer.ByteOffset, error) {
	r := buffer.Range{Start: e.Start, End: e.Start + buffer.ByteOffset(len(e.Old))}
	if _, err := buf.Replace(r, e.New); err != nil {
		return 0, err
	}
	return e.CursorAfter, nil
}
