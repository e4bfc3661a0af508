package vim

// Mode is the editor's input mode, which governs how keys are interpreted.
type Mode uint8

const (
	// ModeNormal is command mode, the initial mode.
	ModeNormal Mode = iota

	// ModeInsert passes keys through as text input.
	ModeInsert

	// ModeVisual is character-wise selection mode.
	ModeVisual

	// ModeVisualLine is line-wise selection mode.
	ModeVisualLine
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	default:
		return "UNKNOWN"
	}
}

// IsVisual returns true for either visual mode.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine
}
