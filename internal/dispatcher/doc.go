// Package dispatcher applies state machine results to the buffer.
//
// The Dispatcher is the bridge between the pure command layer and the
// text: it resolves motions and text objects against the current buffer
// content, performs the edits, and owns everything the commands touch
// besides the text itself: the cursor, the visual selection anchor, the
// yank register and the undo history. Degenerate ranges are silent
// no-ops, so a motion that cannot move produces no edit and no error.
package dispatcher
