package dispatcher

// Register is the single yank register. Delete, change and yank all
// overwrite it; paste reads it.
type Register struct {
	// Text is the stored text.
	Text string

	// Linewise marks text captured as whole lines. Line-wise pastes go
	// onto their own line instead of into the current one.
	Linewise bool
}

// IsEmpty reports whether the register holds no text.
func (r Register) IsEmpty() bool {
	return r.Text == ""
}
