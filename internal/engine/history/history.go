package history

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries matches the undo depth of a stock text widget.
const DefaultMaxEntries = 32

// History manages undo/redo state for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []Entry
	redoStack []Entry

	// Grouping state
	depth     int
	groupName string
	groupOps  []Operation

	maxEntries int
}

// New creates a new history manager.
// A non-positive maxEntries selects DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push records an operation. Outside a group it becomes its own undo unit.
// Clears the redo stack.
func (h *History) Push(op Operation) {
	if op.IsNoOp() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth > 0 {
		h.groupOps = append(h.groupOps, op)
		return
	}

	h.pushLocked(Entry{Name: op.String(), Operations: []Operation{op}, Timestamp: op.Timestamp})
}

func (h *History) pushLocked(e Entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup starts an operation group. Groups nest; only the outermost
// EndGroup produces an entry, named after the outermost BeginGroup.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth == 0 {
		h.groupName = name
		h.groupOps = nil
	}
	h.depth++
}

// EndGroup closes the current group.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 {
		return
	}

	if len(h.groupOps) > 0 {
		h.pushLocked(Entry{Name: h.groupName, Operations: h.groupOps, Timestamp: time.Now()})
	}
	h.groupOps = nil
}

// CancelGroup drops the open group without recording it.
// Edits already applied to the buffer stay applied.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.depth = 0
	h.groupOps = nil
}

// IsGrouping returns true if a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.depth > 0
}

// Undo reverts the most recent entry through a.
// The lock is not held while a applies operations.
func (h *History) Undo(a Applier) (Entry, error) {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return Entry{}, ErrNothingToUndo
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	for i := len(e.Operations) - 1; i >= 0; i-- {
		if err := a.ApplyOperation(e.Operations[i].Invert()); err != nil {
			h.mu.Lock()
			h.undoStack = append(h.undoStack, e)
			h.mu.Unlock()
			return Entry{}, fmt.Errorf("undo %s: %w", e.Name, err)
		}
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, e)
	h.mu.Unlock()
	return e, nil
}

// Redo re-applies the most recently undone entry through a.
func (h *History) Redo(a Applier) (Entry, error) {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return Entry{}, ErrNothingToRedo
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.mu.Unlock()

	for _, op := range e.Operations {
		if err := a.ApplyOperation(op); err != nil {
			h.mu.Lock()
			h.redoStack = append(h.redoStack, e)
			h.mu.Unlock()
			return Entry{}, fmt.Errorf("redo %s: %w", e.Name, err)
		}
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, e)
	h.mu.Unlock()
	return e, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo entries available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo entries available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.depth = 0
	h.groupOps = nil
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
