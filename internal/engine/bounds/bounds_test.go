package bounds

import (
	"testing"

	"github.com/dshills/boxedit/internal/engine/buffer"
)

func ptr(p buffer.Position) *buffer.Position { return &p }

func TestComputeNilEndpoint(t *testing.T) {
	if _, ok := Compute(nil, ptr(buffer.Pos(1, 0)), true, nil, nil); ok {
		t.Error("Compute(nil, end) ok = true")
	}
	if _, ok := Compute(ptr(buffer.Pos(1, 0)), nil, true, nil, nil); ok {
		t.Error("Compute(begin, nil) ok = true")
	}
}

func TestComputeBoxNormalizes(t *testing.T) {
	for r1 := 1; r1 <= 4; r1++ {
		for c1 := 0; c1 <= 4; c1++ {
			for r2 := 1; r2 <= 4; r2++ {
				for c2 := 0; c2 <= 4; c2++ {
					b, ok := Compute(ptr(buffer.Pos(r1, c1)), ptr(buffer.Pos(r2, c2)), true, nil, nil)
					if !ok {
						t.Fatal("Compute() ok = false")
					}
					if b.BC > b.EC || b.BR > b.ER {
						t.Fatalf("Compute(%d.%d, %d.%d) = %v, not normalized", r1, c1, r2, c2, b)
					}
					if b.W != b.EC-b.BC || b.H != b.ER-b.BR {
						t.Fatalf("Compute(%d.%d, %d.%d) = %v, bad size", r1, c1, r2, c2, b)
					}
				}
			}
		}
	}
}

func TestComputeBoxIndependentAxes(t *testing.T) {
	// Bottom-left to top-right is still a true rectangle.
	b, _ := Compute(ptr(buffer.Pos(5, 1)), ptr(buffer.Pos(2, 6)), true, nil, nil)

	want := Bounds{BC: 1, BR: 2, EC: 6, ER: 5, W: 5, H: 3, Dir: Direction{Down: false, Right: true}, Box: true}
	if b != want {
		t.Errorf("Compute() = %v, want %v", b, want)
	}
}

func TestComputeDirection(t *testing.T) {
	tests := []struct {
		name       string
		begin, end buffer.Position
		dir        *Direction
		want       Direction
	}{
		{"down right", buffer.Pos(1, 1), buffer.Pos(3, 4), nil, Direction{true, true}},
		{"up left", buffer.Pos(3, 4), buffer.Pos(1, 1), nil, Direction{false, false}},
		{"supplied kept", buffer.Pos(1, 1), buffer.Pos(3, 4), &Direction{false, false}, Direction{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := Compute(&tt.begin, &tt.end, true, nil, tt.dir)
			if b.Dir != tt.want {
				t.Errorf("Compute().Dir = %+v, want %+v", b.Dir, tt.want)
			}
		})
	}
}

func TestDirectionOfKeepsZeroAxis(t *testing.T) {
	prev := Direction{Down: false, Right: true}

	got := DirectionOf(buffer.Pos(3, 2), buffer.Pos(3, 0), prev)
	if got != (Direction{Down: false, Right: false}) {
		t.Errorf("DirectionOf() = %+v", got)
	}

	got = DirectionOf(buffer.Pos(3, 2), buffer.Pos(5, 2), prev)
	if got != (Direction{Down: true, Right: true}) {
		t.Errorf("DirectionOf() = %+v", got)
	}
}

type fakeSource struct{}

func (fakeSource) Offset(from, to buffer.Position) int {
	return buffer.NewBufferFromString("abc\nde\nfghi").Offset(from, to)
}

func TestComputeLinear(t *testing.T) {
	b, ok := Compute(ptr(buffer.Pos(3, 2)), ptr(buffer.Pos(1, 1)), false, fakeSource{}, nil)
	if !ok {
		t.Fatal("Compute() ok = false")
	}

	want := Bounds{BC: 1, BR: 1, EC: 2, ER: 3, W: 9, H: 2}
	if b != want {
		t.Errorf("Compute() = %v, want %v", b, want)
	}
	if !b.Contains(buffer.Pos(2, 5)) || b.Contains(buffer.Pos(1, 0)) {
		t.Error("linear Contains() wrong")
	}
	if r := b.RowRanges(); len(r) != 1 || r[0].Start != buffer.Pos(1, 1) || r[0].End != buffer.Pos(3, 2) {
		t.Errorf("RowRanges() = %v", r)
	}
}

func TestBoundsShiftAndAt(t *testing.T) {
	b := NewBox(buffer.Pos(2, 3), buffer.Pos(4, 5), Direction{Down: true})

	s := b.Shift(1, 1)
	if s.Start() != buffer.Pos(3, 4) || s.End() != buffer.Pos(5, 6) || s.W != 2 || s.H != 2 {
		t.Errorf("Shift(1, 1) = %v", s)
	}
	if s.Dir != b.Dir {
		t.Error("Shift() lost direction")
	}

	clamped := b.Shift(-5, -9)
	if clamped.Start() != buffer.Pos(1, 0) || clamped.End() != buffer.Pos(3, 2) {
		t.Errorf("Shift(-5, -9) = %v", clamped)
	}

	if got := b.At(7, 0); got.End() != buffer.Pos(9, 2) {
		t.Errorf("At(7, 0) = %v", got)
	}
}

func TestBoundsCaretAndRows(t *testing.T) {
	b := NewBox(buffer.Pos(1, 1), buffer.Pos(3, 3), Direction{})

	c := b.Caret(4)
	if c.BC != 4 || c.EC != 4 || c.W != 0 || c.BR != 1 || c.ER != 3 {
		t.Errorf("Caret(4) = %v", c)
	}
	if !c.Contains(buffer.Pos(2, 4)) {
		t.Error("zero-width bounds should contain their caret column")
	}

	ranges := b.RowRanges()
	if len(ranges) != 3 {
		t.Fatalf("RowRanges() len = %d, want 3", len(ranges))
	}
	for i, r := range ranges {
		if r.Start != buffer.Pos(i+1, 1) || r.End != buffer.Pos(i+1, 3) {
			t.Errorf("RowRanges()[%d] = %v", i, r)
		}
	}

	single := NewBox(buffer.Pos(2, 2), buffer.Pos(2, 2), Direction{})
	if single.Rows() != 1 || len(single.RowRanges()) != 1 {
		t.Error("degenerate rectangle should span one row")
	}
}

func TestBoundsEqualIgnoresDirection(t *testing.T) {
	a := NewBox(buffer.Pos(1, 1), buffer.Pos(2, 2), Direction{Down: true})
	b := NewBox(buffer.Pos(2, 2), buffer.Pos(1, 1), Direction{})

	if !a.Equal(b) {
		t.Error("Equal() = false for same geometry")
	}
	if a.IsZero() || !(Bounds{}).IsZero() {
		t.Error("IsZero() wrong")
	}
}
