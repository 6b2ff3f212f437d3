package script

import (
	"github.com/dshills/boxedit/internal/boxselect"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/multicaret"
)

// MemView is a headless boxselect.View with one pixel per cell and no
// scrolling.
type MemView struct {
	buf     *buffer.Buffer
	caret   buffer.Position
	pointer boxselect.Pointer
	carets  []multicaret.Marker
}

// NewMemView creates a view over buf with the caret at the first cell.
func NewMemView(buf *buffer.Buffer) *MemView {
	return &MemView{buf: buf, caret: buffer.Pos(1, 0)}
}

func (v *MemView) CellSize() (int, int)               { return 1, 1 }
func (v *MemView) TopLeft() buffer.Position           { return buffer.Pos(1, 0) }
func (v *MemView) Caret() buffer.Position             { return v.caret }
func (v *MemView) SetCaret(pos buffer.Position)       { v.caret = pos }
func (v *MemView) SetPointer(p boxselect.Pointer)     { v.pointer = p }
func (v *MemView) DrawCarets(m []multicaret.Marker)   { v.carets = m }
func (v *MemView) Pointer() boxselect.Pointer         { return v.pointer }
func (v *MemView) VisibleCarets() []multicaret.Marker { return v.carets }

// CellAt returns the nearest real position to the cell at (x, y).
func (v *MemView) CellAt(x, y int) buffer.Position {
	return v.buf.Resolve(buffer.Pos(y+1, x))
}
