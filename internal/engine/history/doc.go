// Package history provides undo and redo for buffer edits.
//
// Every mutation the dispatcher applies is captured as an invertible Edit:
// a single text replacement with the cursor positions on either side. The
// History keeps two stacks of these edits; undoing pops an edit, reverts
// it against the buffer and moves it to the redo stack, and a fresh edit
// clears the redo stack.
package history
