package vim

import "github.com/abeckett/vimdown/internal/engine/motion"

// ResultKind tags the outcome of handling one key.
type ResultKind uint8

const (
	// ResultPending means the key was absorbed: it either extended an
	// in-flight multi-key sequence or discarded one. No host action.
	ResultPending ResultKind = iota

	// ResultPassthrough means the key is literal text input (insert mode).
	ResultPassthrough

	// ResultModeChange reports a mode switch. Mode holds the new mode.
	ResultModeChange

	// ResultMotion is a bare cursor movement. Motion and Count are set.
	ResultMotion

	// ResultOperatorMotion applies Op over the range covered by Motion.
	ResultOperatorMotion

	// ResultOperatorLine applies Op to Count whole lines (dd, yy, cc).
	ResultOperatorLine

	// ResultOperatorObject applies Op over a text object (diw, ci", da().
	ResultOperatorObject

	// ResultOperatorSelection applies Op over the active visual selection.
	// Linewise reports whether the selection was line-wise.
	ResultOperatorSelection

	// ResultDeleteChar deletes Count characters at the cursor (x).
	ResultDeleteChar

	// ResultDeleteCharBack deletes Count characters before the cursor (X).
	ResultDeleteCharBack

	// ResultReplaceChar overwrites Count characters with Char (r).
	ResultReplaceChar

	// ResultJoinLines joins the current line with the next (J).
	ResultJoinLines

	// ResultPasteAfter puts the register after the cursor (p).
	ResultPasteAfter

	// ResultPasteBefore puts the register before the cursor (P).
	ResultPasteBefore

	// ResultInsertAfterCursor enters insert mode one cell right (a).
	ResultInsertAfterCursor

	// ResultInsertAtLineStart enters insert mode at the first non-blank (I).
	ResultInsertAtLineStart

	// ResultInsertAtLineEnd enters insert mode at end of line (A).
	ResultInsertAtLineEnd

	// ResultOpenLineBelow opens a new line below and enters insert mode (o).
	ResultOpenLineBelow

	// ResultOpenLineAbove opens a new line above and enters insert mode (O).
	ResultOpenLineAbove

	// ResultUndo reverts the last edit (u).
	ResultUndo

	// ResultRedo reapplies an undone edit (Ctrl-R).
	ResultRedo

	// ResultRepeatLastChange replays the recorded change ('.'). Change
	// carries the recording, or nil when nothing has been recorded yet.
	ResultRepeatLastChange

	// ResultReplayInsert re-inserts captured text during a dot replay.
	// Text holds the characters.
	ResultReplayInsert

	// ResultSearchForward starts a forward search prompt (/).
	ResultSearchForward
)

// String returns the kind's name for logs and tests.
func (k ResultKind) String() string {
	switch k {
	case ResultPending:
		return "pending"
	case ResultPassthrough:
		return "passthrough"
	case ResultModeChange:
		return "modeChange"
	case ResultMotion:
		return "motion"
	case ResultOperatorMotion:
		return "operatorMotion"
	case ResultOperatorLine:
		return "operatorLine"
	case ResultOperatorObject:
		return "operatorObject"
	case ResultOperatorSelection:
		return "operatorSelection"
	case ResultDeleteChar:
		return "deleteChar"
	case ResultDeleteCharBack:
		return "deleteCharBack"
	case ResultReplaceChar:
		return "replaceChar"
	case ResultJoinLines:
		return "joinLines"
	case ResultPasteAfter:
		return "pasteAfter"
	case ResultPasteBefore:
		return "pasteBefore"
	case ResultInsertAfterCursor:
		return "insertAfterCursor"
	case ResultInsertAtLineStart:
		return "insertAtLineStart"
	case ResultInsertAtLineEnd:
		return "insertAtLineEnd"
	case ResultOpenLineBelow:
		return "openLineBelow"
	case ResultOpenLineAbove:
		return "openLineAbove"
	case ResultUndo:
		return "undo"
	case ResultRedo:
		return "redo"
	case ResultRepeatLastChange:
		return "repeatLastChange"
	case ResultReplayInsert:
		return "replayInsert"
	case ResultSearchForward:
		return "searchForward"
	default:
		return "unknown"
	}
}

// Result is the machine's verdict on a single key. Kind selects which of
// the remaining fields are meaningful.
type Result struct {
	Kind ResultKind

	// Mode is the new mode for ResultModeChange.
	Mode Mode

	// Count is the effective repeat count, already defaulted to 1.
	Count int

	// Motion is set for motion and operator-motion results.
	Motion motion.Motion

	// Object is set for operator-object results.
	Object motion.TextObject

	// Op is the operator for operator results.
	Op Operator

	// Char is the target character for ResultReplaceChar.
	Char rune

	// Text is the captured insert text for ResultReplayInsert.
	Text string

	// Linewise reports a line-wise visual selection for
	// ResultOperatorSelection.
	Linewise bool

	// Change carries the recorded change for ResultRepeatLastChange.
	Change *Recorded
}
