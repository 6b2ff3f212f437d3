package boxselect

import (
	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/engine/pad"
)

// Buffer is the text buffer the editor mutates. *buffer.Buffer satisfies it.
type Buffer interface {
	pad.Buffer
	bounds.TextSource

	Get(from, to buffer.Position) string
	Resolve(pos buffer.Position) buffer.Position

	DisplayColumn(pos buffer.Position) int
	ColumnAtDisplay(row, x int) int
	DisplayWidth(row int) int

	SetMark(name string, pos buffer.Position, gravity buffer.Gravity) buffer.Position
	Mark(name string) (buffer.Position, bool)
	DeleteMark(name string)

	BeginGroup(name string)
	EndGroup()
	Undo() (buffer.Position, error)
	Redo() (buffer.Position, error)
}

// View is the host widget.
type View interface {
	// CellSize returns the character cell size in pixels.
	CellSize() (w, h int)
	// TopLeft returns the first visible cell.
	TopLeft() buffer.Position
	// Caret returns the insertion caret.
	Caret() buffer.Position
	// SetCaret moves the insertion caret. pos may be virtual.
	SetCaret(pos buffer.Position)
	// CellAt returns the existing cell under the pixel offset.
	CellAt(x, y int) buffer.Position
	// SetPointer changes the pointer affordance.
	SetPointer(p Pointer)
	// DrawCarets shows markers, replacing any drawn before. nil erases.
	DrawCarets(markers []multicaret.Marker)
}

// Highlighter stores tagged ranges. *highlight.Store satisfies it.
type Highlighter interface {
	Add(tag string, ranges ...buffer.Range) bool
	Set(tag string, ranges ...buffer.Range) bool
	Clear(tag string) bool
	Replace(from, to string) bool
	Ranges(tag string) []buffer.Range
	Extent(tag string) (buffer.Range, bool)
	Contains(tag string, pos buffer.Position) bool
	Gate(allowed ...string)
	Ungate()
}

// Clipboard reads and writes plain text. Both adapters in
// internal/clipboard satisfy it.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}
