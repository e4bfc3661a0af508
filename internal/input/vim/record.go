package vim

// Recorded is the dot-repeat record: the last edit-capable command with
// its original count, plus any insert-mode text captured before the
// insertion was closed with Escape.
type Recorded struct {
	// Result is the recorded command, count included.
	Result Result

	// InsertText is the text typed during the insertion the command
	// opened, empty when the command did not enter insert mode.
	InsertText string
}

// record stores res as the last change. When the command enters insert
// mode, keystroke capture starts and runs until Escape closes it.
func (m *Machine) record(res Result, entersInsert bool) {
	m.last = &Recorded{Result: res}
	m.recording = entersInsert
	m.insertBuf = m.insertBuf[:0]
}

// finishInsertRecording seals the captured insert text into the last
// change.
func (m *Machine) finishInsertRecording() {
	if m.recording && m.last != nil {
		m.last.InsertText = string(m.insertBuf)
	}
	m.recording = false
	m.insertBuf = m.insertBuf[:0]
}

// LastChange returns a copy of the dot-repeat record, or nil when no
// edit-capable command has completed yet.
func (m *Machine) LastChange() *Recorded {
	if m.last == nil {
		return nil
	}
	c := *m.last
	return &c
}
