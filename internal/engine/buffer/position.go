package buffer

import "fmt"

// Position is a row/column location in the buffer.
// Row is 1-indexed and Col is a 0-indexed rune column.
// A Position may be virtual: the row or column need not exist yet.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the "row.col" form of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d.%d", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Positions are ordered by row then column; existence is not required.
func (p Position) Compare(other Position) int {
	switch {
	case p.Row < other.Row:
		return -1
	case p.Row > other.Row:
		return 1
	case p.Col < other.Col:
		return -1
	case p.Col > other.Col:
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsValid returns true if the position is addressable (row >= 1, col >= 0).
func (p Position) IsValid() bool {
	return p.Row >= 1 && p.Col >= 0
}

// Clamp returns p with row >= 1 and col >= 0.
func (p Position) Clamp() Position {
	if p.Row < 1 {
		p.Row = 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

// Add returns p moved by dr rows and dc columns, clamped to valid space.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}.Clamp()
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if a.After(b) {
		return a
	}
	return b
}
