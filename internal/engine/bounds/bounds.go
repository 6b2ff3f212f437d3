// Package bounds computes the normalized rectangle (or linear span) of a
// selection from its anchor and cursor positions.
package bounds

import (
	"fmt"

	"github.com/dshills/boxedit/internal/engine/buffer"
)

// TextSource reads text between two positions. Only linear bounds need it.
type TextSource interface {
	Offset(from, to buffer.Position) int
}

// Direction records which way the anchor-to-cursor vector pointed.
type Direction struct {
	Down  bool
	Right bool
}

// DirectionOf derives the direction from begin to end per axis.
// An axis with no movement keeps its value from prev.
func DirectionOf(begin, end buffer.Position, prev Direction) Direction {
	d := prev
	switch {
	case end.Row > begin.Row:
		d.Down = true
	case end.Row < begin.Row:
		d.Down = false
	}
	switch {
	case end.Col > begin.Col:
		d.Right = true
	case end.Col < begin.Col:
		d.Right = false
	}
	return d
}

// Bounds is a normalized selection extent.
//
// For box bounds, (BC, BR) is the top-left corner and (EC, ER) the
// bottom-right, W = EC-BC and H = ER-BR. For linear bounds, (BR, BC) and
// (ER, EC) are the ordered endpoints and W is the character count between
// them. H is always one less than the number of rows spanned.
type Bounds struct {
	BC, BR int
	EC, ER int
	W, H   int
	Dir    Direction
	Box    bool
}

// Compute normalizes begin and end into Bounds. It returns false when
// either endpoint is nil. When dir is nil the direction is derived from the
// sign of end-begin on each axis; otherwise it is carried over verbatim.
// src is consulted only for linear bounds and may be nil for box bounds.
func Compute(begin, end *buffer.Position, box bool, src TextSource, dir *Direction) (Bounds, bool) {
	if begin == nil || end == nil {
		return Bounds{}, false
	}

	var d Direction
	if dir != nil {
		d = *dir
	} else {
		d = Direction{Down: end.Row > begin.Row, Right: end.Col > begin.Col}
	}

	if box {
		return NewBox(*begin, *end, d), true
	}

	a, b := *begin, *end
	if b.Before(a) {
		a, b = b, a
	}
	w := 0
	if src != nil {
		w = src.Offset(a, b)
	}
	return Bounds{
		BC: a.Col, BR: a.Row,
		EC: b.Col, ER: b.Row,
		W: w, H: b.Row - a.Row,
		Dir: d,
	}, true
}

// NewBox returns box bounds over the rectangle with corners a and b,
// taking the min/max of rows and columns independently.
func NewBox(a, b buffer.Position, d Direction) Bounds {
	br, er := minMax(a.Row, b.Row)
	bc, ec := minMax(a.Col, b.Col)
	return Bounds{
		BC: bc, BR: br,
		EC: ec, ER: er,
		W: ec - bc, H: er - br,
		Dir: d,
		Box: true,
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// Start returns the top-left (box) or first (linear) position.
func (b Bounds) Start() buffer.Position {
	return buffer.Position{Row: b.BR, Col: b.BC}
}

// End returns the bottom-right (box) or last (linear) position.
func (b Bounds) End() buffer.Position {
	return buffer.Position{Row: b.ER, Col: b.EC}
}

// IsZero returns true for the zero value (no bounds).
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Rows returns the number of rows spanned.
func (b Bounds) Rows() int {
	return b.H + 1
}

// Equal compares geometry only; direction is ignored.
func (b Bounds) Equal(o Bounds) bool {
	return b.BC == o.BC && b.BR == o.BR && b.EC == o.EC && b.ER == o.ER &&
		b.W == o.W && b.H == o.H && b.Box == o.Box
}

// Shift moves box bounds by dr rows and dc columns, keeping width, height
// and direction. The top-left corner is clamped to row >= 1, col >= 0.
func (b Bounds) Shift(dr, dc int) Bounds {
	return b.At(b.BR+dr, b.BC+dc)
}

// At returns box bounds of the same size with its top-left at (row, col).
func (b Bounds) At(row, col int) Bounds {
	p := buffer.Position{Row: row, Col: col}.Clamp()
	b.BR, b.BC = p.Row, p.Col
	b.ER, b.EC = p.Row+b.H, p.Col+b.W
	return b
}

// Caret returns zero-width box bounds over the same rows at column col.
func (b Bounds) Caret(col int) Bounds {
	if col < 0 {
		col = 0
	}
	return Bounds{
		BC: col, BR: b.BR,
		EC: col, ER: b.ER,
		H:   b.H,
		Dir: b.Dir,
		Box: true,
	}
}

// RowRanges returns the per-row column spans of box bounds, top to bottom.
// Linear bounds yield their single span.
func (b Bounds) RowRanges() []buffer.Range {
	if !b.Box {
		return []buffer.Range{buffer.NewRange(b.Start(), b.End())}
	}
	ranges := make([]buffer.Range, 0, b.Rows())
	for row := b.BR; row <= b.ER; row++ {
		ranges = append(ranges, buffer.RowRange(row, b.BC, b.EC))
	}
	return ranges
}

// Contains reports whether pos lies inside the bounds. Box bounds include
// their right edge column so a zero-width rectangle still contains its caret
// column.
func (b Bounds) Contains(pos buffer.Position) bool {
	if pos.Row < b.BR || pos.Row > b.ER {
		return false
	}
	if b.Box {
		return pos.Col >= b.BC && pos.Col <= b.EC
	}
	return !pos.Before(b.Start()) && !pos.After(b.End())
}

// String returns a compact representation for logging.
func (b Bounds) String() string {
	kind := "linear"
	if b.Box {
		kind = "box"
	}
	return fmt.Sprintf("%s[%d.%d-%d.%d w=%d h=%d down=%v right=%v]",
		kind, b.BR, b.BC, b.ER, b.EC, b.W, b.H, b.Dir.Down, b.Dir.Right)
}
