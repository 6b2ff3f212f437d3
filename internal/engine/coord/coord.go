// Package coord converts between pointer pixels, virtual cells and arrow
// steps.
package coord

import (
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/input/key"
)

// PixelToCell converts a pixel offset within the text area into a virtual
// cell position. top is the first visible cell; cw and ch are the cell
// width and height in pixels. The row rounds to the nearest cell; the
// column floors when right is false and ceils when it is true, so snapping
// favours the side the drag approaches from. Non-positive cell sizes are
// treated as 1.
func PixelToCell(x, y int, top buffer.Position, cw, ch int, right bool) buffer.Position {
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}

	row := top.Row + roundDiv(y, ch)
	var col int
	if right {
		col = ceilDiv(x, cw)
	} else {
		col = floorDiv(x, cw)
	}
	return buffer.Position{Row: row, Col: top.Col + col}.Clamp()
}

// SnapIndex picks the visible caret position for a rectangle spanning
// start..end: the row comes from end when down and from start otherwise,
// and the column comes from end when right and from start otherwise.
func SnapIndex(start, end buffer.Position, down, right bool) buffer.Position {
	p := start
	if down {
		p.Row = end.Row
	}
	if right {
		p.Col = end.Col
	}
	return p
}

// ArrowDelta returns the row/column step for an arrow key.
func ArrowDelta(k key.Key) (dr, dc int, ok bool) {
	switch k {
	case key.KeyUp:
		return -1, 0, true
	case key.KeyDown:
		return 1, 0, true
	case key.KeyLeft:
		return 0, -1, true
	case key.KeyRight:
		return 0, 1, true
	}
	return 0, 0, false
}

// Step moves p one cell in the direction of an arrow key, clamped to
// row >= 1 and col >= 0. Non-arrow keys leave p unchanged.
func Step(p buffer.Position, k key.Key) buffer.Position {
	dr, dc, ok := ArrowDelta(k)
	if !ok {
		return p
	}
	return p.Add(dr, dc)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func roundDiv(a, b int) int {
	return floorDiv(2*a+b, 2*b)
}
