// Package vim implements the modal command state machine at the heart of
// the input engine.
//
// The Machine consumes one normalized key event at a time and emits a
// tagged Result describing what the host should do: move the cursor, apply
// an operator over a motion or text object, change mode, paste, undo, and
// so on. It owns the mode, the numeric count accumulator, the pending
// operator, the one-level multi-key lookahead state, and the dot-repeat
// record. It never touches the buffer itself.
//
// All multi-key sequences resolve through exactly one level of lookahead
// (awaiting a motion, a target character, a second 'g', or a text object
// key). Any key that does not complete the pending sequence discards it and
// returns the machine to its idle state; no input sequence is an error.
//
// Typical wiring:
//
//	m := vim.NewMachine()
//	res := m.HandleKey(ev)
//	// hand res to the dispatcher, which resolves motions against the
//	// buffer and applies edits
package vim
