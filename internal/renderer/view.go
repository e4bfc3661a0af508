package renderer

import "github.com/abeckett/vimdown/internal/engine/buffer"

// View is everything a single frame needs.
type View struct {
	// Snapshot is the buffer state to draw.
	Snapshot *buffer.Snapshot

	// TopLine is the first visible buffer line.
	TopLine int

	// Cursor is the cursor position in buffer coordinates.
	Cursor buffer.Point

	// Selection is the active visual range, when Selected is true.
	Selection buffer.Range
	Selected  bool

	// TabWidth is the display width of a tab.
	TabWidth int

	// StatusLeft and StatusRight fill the status line, usually the mode
	// name on the left and pending keys on the right.
	StatusLeft  string
	StatusRight string

	// Message overrides StatusLeft, for prompts and errors.
	Message string

	// InsertCursor selects the bar cursor shape instead of the block.
	InsertCursor bool
}
