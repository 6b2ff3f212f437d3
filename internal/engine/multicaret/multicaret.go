package multicaret

import (
	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
)

// Step is one row's edit site: insert or delete at (Row, Col), then move
// the caret by Advance.
type Step struct {
	Row     int
	Col     int
	Advance int
}

// Pos returns the step's edit position.
func (s Step) Pos() buffer.Position {
	return buffer.Position{Row: s.Row, Col: s.Col}
}

// TypeAt yields one step per row in [BR, ER] at column BC, top to bottom.
// advance is +1 for a typed character, -1 for backspace and 0 for a pass
// that leaves carets in place.
func TypeAt(b bounds.Bounds, advance int) []Step {
	steps := make([]Step, 0, b.Rows())
	for row := b.BR; row <= b.ER; row++ {
		steps = append(steps, Step{Row: row, Col: b.BC, Advance: advance})
	}
	return steps
}

// Marker is a zero-width caret drawn at Pos.
type Marker struct {
	Pos     buffer.Position
	Primary bool
}

// Markers returns one marker per row of b at column col. The primary
// marker is on ER when the selection runs downwards and on BR otherwise.
func Markers(b bounds.Bounds, col int) []Marker {
	if b.IsZero() {
		return nil
	}

	primary := b.BR
	if b.Dir.Down {
		primary = b.ER
	}

	markers := make([]Marker, 0, b.Rows())
	for row := b.BR; row <= b.ER; row++ {
		markers = append(markers, Marker{
			Pos:     buffer.Position{Row: row, Col: col},
			Primary: row == primary,
		})
	}
	return markers
}

// Primary returns the primary marker, if any.
func Primary(markers []Marker) (Marker, bool) {
	for _, m := range markers {
		if m.Primary {
			return m, true
		}
	}
	return Marker{}, false
}
