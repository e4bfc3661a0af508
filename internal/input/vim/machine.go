package vim

import (
	"github.com/abeckett/vimdown/internal/engine/motion"
	"github.com/abeckett/vimdown/internal/input/key"
)

// awaitState is the one-level lookahead the machine can be parked in
// while a multi-key sequence completes.
type awaitState uint8

const (
	awaitNone awaitState = iota

	// awaitMotion follows an operator key: d, c, y, >, <.
	awaitMotion

	// awaitChar follows f, t or r and consumes the next character
	// verbatim.
	awaitChar

	// awaitSecondKey follows a 'g' prefix.
	awaitSecondKey

	// awaitObject follows i or a while an operator is pending.
	awaitObject
)

// charReason records which command parked the machine in awaitChar.
type charReason uint8

const (
	charFind charReason = iota
	charTill
	charReplace
)

// Machine is the modal command state machine. It interprets normalized
// key events according to the current mode and emits one Result per key.
// It owns mode, count, pending operator, lookahead state and the
// dot-repeat record; it never reads or writes buffer text.
//
// Machine is not safe for concurrent use. The host feeds it from a
// single input goroutine.
type Machine struct {
	mode  Mode
	count CountState

	await       awaitState
	op          Operator
	charWhy     charReason
	objectInner bool

	pending []rune

	last      *Recorded
	recording bool
	insertBuf []rune
}

// NewMachine returns a machine in normal mode with no pending state.
func NewMachine() *Machine {
	return &Machine{mode: ModeNormal}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// PendingKeys returns the keys of the in-flight sequence, count digits
// included, for status line display. Empty when the machine is idle.
func (m *Machine) PendingKeys() string {
	return string(m.pending)
}

// Reset returns the machine to normal mode with no pending sequence. The
// dot-repeat record survives.
func (m *Machine) Reset() {
	m.mode = ModeNormal
	m.count.Reset()
	m.await = awaitNone
	m.op = OpNone
	m.pending = m.pending[:0]
	m.recording = false
	m.insertBuf = m.insertBuf[:0]
}

// HandleKey interprets one key event and returns the resulting command.
// No key sequence is an error: anything unrecognized discards the
// pending state and returns a pending result.
func (m *Machine) HandleKey(ev key.Event) Result {
	if m.mode == ModeInsert {
		return m.handleInsert(ev)
	}
	if m.await != awaitNone {
		return m.handleAwaiting(ev)
	}
	if m.mode.IsVisual() {
		return m.handleVisual(ev)
	}
	return m.handleNormal(ev)
}

// handleInsert passes text through and watches for Escape. While a
// recording is open, typed characters are captured for dot-repeat.
func (m *Machine) handleInsert(ev key.Event) Result {
	if ev.IsEscape() {
		m.finishInsertRecording()
		m.mode = ModeNormal
		return Result{Kind: ResultModeChange, Mode: ModeNormal}
	}

	if m.recording {
		switch {
		case ev.IsRune() && !ev.IsModified():
			m.insertBuf = append(m.insertBuf, ev.Rune)
		case ev.IsEnter():
			m.insertBuf = append(m.insertBuf, '\n')
		case ev.IsBackspace():
			if n := len(m.insertBuf); n > 0 {
				m.insertBuf = m.insertBuf[:n-1]
			}
		}
	}

	return Result{Kind: ResultPassthrough}
}

// handleNormal dispatches a key with no sequence pending.
func (m *Machine) handleNormal(ev key.Event) Result {
	if ev.IsCtrl('r') {
		m.clearCount()
		return Result{Kind: ResultRedo}
	}

	r, ok := plainRune(ev)
	if !ok {
		if ev.IsEscape() {
			m.clearCount()
			return Result{Kind: ResultModeChange, Mode: ModeNormal}
		}
		return m.discard()
	}

	if IsCountDigit(r) && (m.count.Active || r != '0') {
		m.count.AccumulateDigit(r)
		m.pushPending(r)
		return Result{Kind: ResultPending}
	}

	if op := operatorForKey(r); op != OpNone {
		m.op = op
		m.await = awaitMotion
		m.pushPending(r)
		return Result{Kind: ResultPending}
	}

	switch r {
	case 'i':
		m.clearCount()
		m.mode = ModeInsert
		return Result{Kind: ResultModeChange, Mode: ModeInsert}
	case 'a':
		return m.enterInsert(ResultInsertAfterCursor)
	case 'A':
		return m.enterInsert(ResultInsertAtLineEnd)
	case 'I':
		return m.enterInsert(ResultInsertAtLineStart)
	case 'o':
		return m.enterInsert(ResultOpenLineBelow)
	case 'O':
		return m.enterInsert(ResultOpenLineAbove)
	case 'v':
		m.clearCount()
		m.mode = ModeVisual
		return Result{Kind: ResultModeChange, Mode: ModeVisual}
	case 'V':
		m.clearCount()
		m.mode = ModeVisualLine
		return Result{Kind: ResultModeChange, Mode: ModeVisualLine}
	case 'x':
		return m.emitRecorded(Result{Kind: ResultDeleteChar, Count: m.count.Take()})
	case 'X':
		return m.emitRecorded(Result{Kind: ResultDeleteCharBack, Count: m.count.Take()})
	case 'J':
		return m.emitRecorded(Result{Kind: ResultJoinLines, Count: m.count.Take()})
	case 'p':
		return m.emitRecorded(Result{Kind: ResultPasteAfter, Count: m.count.Take()})
	case 'P':
		return m.emitRecorded(Result{Kind: ResultPasteBefore, Count: m.count.Take()})
	case 'r':
		m.await = awaitChar
		m.charWhy = charReplace
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 'f':
		m.await = awaitChar
		m.charWhy = charFind
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 't':
		m.await = awaitChar
		m.charWhy = charTill
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 'g':
		m.await = awaitSecondKey
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 'u':
		m.clearCount()
		return Result{Kind: ResultUndo}
	case '.':
		m.clearCount()
		var change *Recorded
		if m.last != nil {
			c := *m.last
			change = &c
		}
		return Result{Kind: ResultRepeatLastChange, Change: change}
	case '/':
		m.clearCount()
		return Result{Kind: ResultSearchForward}
	}

	if mo, ok := motionForKey(r); ok {
		return m.emitMotion(mo)
	}

	return m.discard()
}

// handleVisual dispatches a key while a selection is active. Operators
// act on the selection and leave visual mode.
func (m *Machine) handleVisual(ev key.Event) Result {
	if ev.IsEscape() {
		m.clearCount()
		m.mode = ModeNormal
		return Result{Kind: ResultModeChange, Mode: ModeNormal}
	}

	r, ok := plainRune(ev)
	if !ok {
		return m.discard()
	}

	if IsCountDigit(r) && (m.count.Active || r != '0') {
		m.count.AccumulateDigit(r)
		m.pushPending(r)
		return Result{Kind: ResultPending}
	}

	switch r {
	case 'v':
		m.clearCount()
		if m.mode == ModeVisual {
			m.mode = ModeNormal
		} else {
			m.mode = ModeVisual
		}
		return Result{Kind: ResultModeChange, Mode: m.mode}
	case 'V':
		m.clearCount()
		if m.mode == ModeVisualLine {
			m.mode = ModeNormal
		} else {
			m.mode = ModeVisualLine
		}
		return Result{Kind: ResultModeChange, Mode: m.mode}
	case 'd', 'x':
		return m.emitSelectionOperator(OpDelete)
	case 'c':
		return m.emitSelectionOperator(OpChange)
	case 'y':
		return m.emitSelectionOperator(OpYank)
	case '>':
		return m.emitSelectionOperator(OpIndent)
	case '<':
		return m.emitSelectionOperator(OpOutdent)
	case 'f':
		m.await = awaitChar
		m.charWhy = charFind
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 't':
		m.await = awaitChar
		m.charWhy = charTill
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 'g':
		m.await = awaitSecondKey
		m.pushPending(r)
		return Result{Kind: ResultPending}
	}

	if mo, ok := motionForKey(r); ok {
		return m.emitMotion(mo)
	}

	return m.discard()
}

// handleAwaiting completes or discards the pending multi-key sequence.
func (m *Machine) handleAwaiting(ev key.Event) Result {
	switch m.await {
	case awaitChar:
		return m.resolveChar(ev)
	case awaitSecondKey:
		return m.resolveSecondKey(ev)
	case awaitObject:
		return m.resolveObject(ev)
	case awaitMotion:
		return m.resolveOperatorKey(ev)
	default:
		return m.discard()
	}
}

// resolveChar consumes the target character after f, t or r. Escape and
// special keys abort the sequence.
func (m *Machine) resolveChar(ev key.Event) Result {
	target, ok := plainRune(ev)
	if !ok {
		return m.discard()
	}

	why := m.charWhy
	m.await = awaitNone

	if why == charReplace {
		res := Result{Kind: ResultReplaceChar, Char: target, Count: m.count.Take()}
		return m.emitRecorded(res)
	}

	mo := motion.Find(target)
	if why == charTill {
		mo = motion.Till(target)
	}
	return m.emitMotion(mo)
}

// resolveSecondKey handles the key after a 'g' prefix. Only gg is bound.
func (m *Machine) resolveSecondKey(ev key.Event) Result {
	r, ok := plainRune(ev)
	if !ok || r != 'g' {
		return m.discard()
	}
	m.await = awaitNone
	return m.emitMotion(motion.Motion{Kind: motion.KindDocumentStart})
}

// resolveObject handles the key after i/a while an operator is pending.
func (m *Machine) resolveObject(ev key.Event) Result {
	r, ok := plainRune(ev)
	if !ok {
		return m.discard()
	}

	obj, ok := objectForKey(r, m.objectInner)
	if !ok {
		return m.discard()
	}

	op := m.op
	m.op = OpNone
	m.await = awaitNone

	res := Result{Kind: ResultOperatorObject, Op: op, Object: obj, Count: m.count.Take()}
	m.record(res, op.EntersInsert())
	if op.EntersInsert() {
		m.mode = ModeInsert
	}
	m.pending = m.pending[:0]
	return res
}

// resolveOperatorKey handles the key after an operator. Digits keep
// feeding the shared count accumulator, the doubled operator key selects
// whole lines, i/a park for a text object, and motion keys complete the
// command.
func (m *Machine) resolveOperatorKey(ev key.Event) Result {
	r, ok := plainRune(ev)
	if !ok {
		return m.discard()
	}

	if IsCountDigit(r) && (m.count.Active || r != '0') {
		m.count.AccumulateDigit(r)
		m.pushPending(r)
		return Result{Kind: ResultPending}
	}

	if r == m.op.Key() {
		op := m.op
		m.op = OpNone
		m.await = awaitNone

		res := Result{Kind: ResultOperatorLine, Op: op, Count: m.count.Take()}
		m.record(res, op.EntersInsert())
		if op.EntersInsert() {
			m.mode = ModeInsert
		}
		m.pending = m.pending[:0]
		return res
	}

	switch r {
	case 'i', 'a':
		m.await = awaitObject
		m.objectInner = r == 'i'
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 'g':
		m.await = awaitSecondKey
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 'f':
		m.await = awaitChar
		m.charWhy = charFind
		m.pushPending(r)
		return Result{Kind: ResultPending}
	case 't':
		m.await = awaitChar
		m.charWhy = charTill
		m.pushPending(r)
		return Result{Kind: ResultPending}
	}

	if mo, ok := motionForKey(r); ok {
		return m.emitMotion(mo)
	}

	return m.discard()
}

// emitMotion completes either a bare motion or, when an operator is
// pending, an operator-motion command.
func (m *Machine) emitMotion(mo motion.Motion) Result {
	count := m.count.Take()
	op := m.op
	m.op = OpNone
	m.await = awaitNone
	m.pending = m.pending[:0]

	if op == OpNone {
		return Result{Kind: ResultMotion, Motion: mo, Count: count}
	}

	res := Result{Kind: ResultOperatorMotion, Op: op, Motion: mo, Count: count}
	m.record(res, op.EntersInsert())
	if op.EntersInsert() {
		m.mode = ModeInsert
	}
	return res
}

// emitSelectionOperator applies an operator to the visual selection and
// leaves visual mode. Selection operators are transient and are not
// recorded for dot-repeat.
func (m *Machine) emitSelectionOperator(op Operator) Result {
	res := Result{
		Kind:     ResultOperatorSelection,
		Op:       op,
		Count:    m.count.Take(),
		Linewise: m.mode == ModeVisualLine,
	}

	if op.EntersInsert() {
		m.mode = ModeInsert
	} else {
		m.mode = ModeNormal
	}
	m.pending = m.pending[:0]
	return res
}

// enterInsert emits one of the insert-entry commands and opens an insert
// recording for dot-repeat.
func (m *Machine) enterInsert(kind ResultKind) Result {
	res := Result{Kind: kind, Count: m.count.Take()}
	m.record(res, true)
	m.mode = ModeInsert
	m.pending = m.pending[:0]
	return res
}

// emitRecorded records a completed edit-capable command and returns it.
func (m *Machine) emitRecorded(res Result) Result {
	m.record(res, false)
	m.pending = m.pending[:0]
	return res
}

// discard abandons any pending sequence and count.
func (m *Machine) discard() Result {
	m.op = OpNone
	m.await = awaitNone
	m.count.Reset()
	m.pending = m.pending[:0]
	return Result{Kind: ResultPending}
}

func (m *Machine) pushPending(r rune) {
	m.pending = append(m.pending, r)
}

// clearCount drops an accumulated count together with its pending
// digits, so the status line never shows digits a command has consumed.
func (m *Machine) clearCount() {
	m.count.Reset()
	m.pending = m.pending[:0]
}

// plainRune extracts the character of an unmodified printable key event.
func plainRune(ev key.Event) (rune, bool) {
	if !ev.IsChar() || ev.IsModified() {
		return 0, false
	}
	return ev.Rune, true
}
