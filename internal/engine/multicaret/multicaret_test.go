package multicaret

import (
	"testing"

	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
)

func TestTypeAt(t *testing.T) {
	b := bounds.NewBox(buffer.Pos(1, 1), buffer.Pos(3, 3), bounds.Direction{})

	steps := TypeAt(b, 1)
	if len(steps) != 3 {
		t.Fatalf("TypeAt() len = %d, want 3", len(steps))
	}
	for i, s := range steps {
		want := Step{Row: i + 1, Col: 1, Advance: 1}
		if s != want {
			t.Errorf("TypeAt()[%d] = %+v, want %+v", i, s, want)
		}
	}
	if steps[2].Pos() != buffer.Pos(3, 1) {
		t.Errorf("Pos() = %v, want 3.1", steps[2].Pos())
	}

	single := bounds.NewBox(buffer.Pos(4, 0), buffer.Pos(4, 0), bounds.Direction{})
	if got := TypeAt(single, -1); len(got) != 1 || got[0].Advance != -1 {
		t.Errorf("TypeAt(degenerate) = %+v", got)
	}
}

func TestMarkersCountAndPrimary(t *testing.T) {
	tests := []struct {
		name    string
		dir     bounds.Direction
		primary int
	}{
		{"down", bounds.Direction{Down: true}, 5},
		{"up", bounds.Direction{Down: false}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bounds.NewBox(buffer.Pos(2, 1), buffer.Pos(5, 4), tt.dir)
			markers := Markers(b, 4)

			if len(markers) != b.H+1 {
				t.Fatalf("Markers() len = %d, want %d", len(markers), b.H+1)
			}
			count := 0
			for _, m := range markers {
				if m.Pos.Col != 4 {
					t.Errorf("marker at %v, want column 4", m.Pos)
				}
				if m.Primary {
					count++
				}
			}
			if count != 1 {
				t.Errorf("%d primary markers, want 1", count)
			}
			p, ok := Primary(markers)
			if !ok || p.Pos.Row != tt.primary {
				t.Errorf("Primary() = %v, want row %d", p.Pos, tt.primary)
			}
		})
	}

	if Markers(bounds.Bounds{}, 0) != nil {
		t.Error("Markers(zero) should be nil")
	}
}
