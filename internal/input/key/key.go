package key

// Key identifies a pressed key. Printable characters use KeyRune with the
// character carried separately on the event.
type Key uint8

const (
	// KeyNone is the zero value, not a real key.
	KeyNone Key = iota

	// KeyRune is a printable character key.
	KeyRune

	// KeyEscape is the Escape key.
	KeyEscape

	// KeyEnter is the Return/Enter key.
	KeyEnter

	// KeyTab is the Tab key.
	KeyTab

	// KeyBackspace is the Backspace key.
	KeyBackspace

	// KeyDelete is the forward Delete key.
	KeyDelete

	// KeyUp, KeyDown, KeyLeft, KeyRight are the arrow keys.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyHome and KeyEnd jump within a line.
	KeyHome
	KeyEnd

	// KeyPageUp and KeyPageDown scroll by a screenful.
	KeyPageUp
	KeyPageDown
)

// String returns the key's display name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	default:
		return "None"
	}
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
