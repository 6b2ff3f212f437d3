package buffer

import "fmt"

// Range is a span of text between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a Range with Start <= End.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// RowRange is the span [startCol, endCol) on a single row.
func RowRange(row, startCol, endCol int) Range {
	return NewRange(Pos(row, startCol), Pos(row, endCol))
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if Start <= End.
func (r Range) IsValid() bool {
	return !r.End.Before(r.Start)
}

// SingleRow returns true if the range starts and ends on the same row.
func (r Range) SingleRow() bool {
	return r.Start.Row == r.End.Row
}

// Contains returns true if pos lies within [Start, End).
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		Start: MinPosition(r.Start, other.Start),
		End:   MaxPosition(r.End, other.End),
	}
}
