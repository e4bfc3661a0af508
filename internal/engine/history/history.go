package history

import (
	"errors"
	"sync"

	"github.com/abeckett/vimdown/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when no limit is given.
const DefaultMaxEntries = 1000

// History manages undo/redo state for a buffer. Each stack entry is a
// group of one or more edits that undo and redo as a unit; an insert
// session records its opening command and every keystroke as one group.
type History struct {
	mu sync.Mutex

	undoStack [][]Edit
	redoStack [][]Edit

	grouping bool
	group    []Edit

	maxEntries int
}

// New creates a history with the given undo depth. Non-positive values
// fall back to DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records an applied edit and clears the redo stack. While a group
// is open the edit joins it instead of landing on the stack directly.
func (h *History) Push(e Edit) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.group = append(h.group, e)
		return
	}

	h.pushLocked([]Edit{e})
}

// BeginGroup opens a group. Edits pushed until EndGroup undo together.
// Opening a group while one is already open is a no-op.
func (h *History) BeginGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}
	h.grouping = true
	h.group = nil
}

// EndGroup commits the open group to the undo stack. An empty group is
// dropped; calling EndGroup with no group open is a no-op.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.group) > 0 {
		h.pushLocked(h.group)
	}
	h.group = nil
}

func (h *History) pushLocked(edits []Edit) {
	h.undoStack = append(h.undoStack, edits)
	h.redoStack = h.redoStack[:0]

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent edit group and returns the cursor
// position to restore. The group moves to the redo stack.
func (h *History) Undo(buf *buffer.Buffer) (buffer.ByteOffset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return 0, ErrNothingToUndo
	}

	group := h.undoStack[len(h.undoStack)-1]

	// Edits were applied in order, so they revert in reverse.
	var cur buffer.ByteOffset
	for i := len(group) - 1; i >= 0; i-- {
		c, err := group[i].Revert(buf)
		if err != nil {
			return 0, err
		}
		cur = c
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, group)
	return cur, nil
}

// Redo reapplies the most recently undone group and returns the cursor
// position to restore.
func (h *History) Redo(buf *buffer.Buffer) (buffer.ByteOffset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return 0, ErrNothingToRedo
	}

	group := h.redoStack[len(h.redoStack)-1]

	var cur buffer.ByteOffset
	for _, e := range group {
		c, err := e.Reapply(buf)
		if err != nil {
			return 0, err
		}
		cur = c
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, group)
	return cur, nil
}

// CanUndo reports whether an edit group is available to undo.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo reports whether an undone group is available to redo.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// Len returns the number of groups on the undo stack.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// Clear drops both stacks and any open group.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.group = nil
}
