package coord

import (
	"testing"

	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/input/key"
)

func TestPixelToCell(t *testing.T) {
	top := buffer.Pos(1, 0)

	tests := []struct {
		name  string
		x, y  int
		top   buffer.Position
		right bool
		want  buffer.Position
	}{
		{"origin", 0, 0, top, false, buffer.Pos(1, 0)},
		{"floor column", 15, 0, top, false, buffer.Pos(1, 1)},
		{"ceil column", 15, 0, top, true, buffer.Pos(1, 2)},
		{"exact column ceil", 20, 0, top, true, buffer.Pos(1, 2)},
		{"row rounds down", 0, 7, top, false, buffer.Pos(1, 0)},
		{"row rounds up", 0, 8, top, false, buffer.Pos(2, 0)},
		{"scrolled viewport", 30, 32, buffer.Pos(10, 0), false, buffer.Pos(12, 3)},
		{"negative clamps", -25, -40, top, false, buffer.Pos(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PixelToCell(tt.x, tt.y, tt.top, 10, 16, tt.right)
			if got != tt.want {
				t.Errorf("PixelToCell(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelToCellUnitCells(t *testing.T) {
	// Terminal hosts report cells directly with a 1x1 cell size.
	got := PixelToCell(7, 3, buffer.Pos(1, 0), 1, 1, false)
	if got != buffer.Pos(4, 7) {
		t.Errorf("PixelToCell() = %v, want 4.7", got)
	}
	if got := PixelToCell(7, 3, buffer.Pos(1, 0), 0, 0, true); got != buffer.Pos(4, 7) {
		t.Errorf("PixelToCell() with zero cell size = %v, want 4.7", got)
	}
}

func TestSnapIndex(t *testing.T) {
	start := buffer.Pos(2, 1)
	end := buffer.Pos(5, 7)

	tests := []struct {
		down, right bool
		want        buffer.Position
	}{
		{true, true, buffer.Pos(5, 7)},
		{true, false, buffer.Pos(5, 1)},
		{false, true, buffer.Pos(2, 7)},
		{false, false, buffer.Pos(2, 1)},
	}

	for _, tt := range tests {
		if got := SnapIndex(start, end, tt.down, tt.right); got != tt.want {
			t.Errorf("SnapIndex(down=%v, right=%v) = %v, want %v", tt.down, tt.right, got, tt.want)
		}
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		from buffer.Position
		k    key.Key
		want buffer.Position
	}{
		{buffer.Pos(3, 3), key.KeyUp, buffer.Pos(2, 3)},
		{buffer.Pos(3, 3), key.KeyDown, buffer.Pos(4, 3)},
		{buffer.Pos(3, 3), key.KeyLeft, buffer.Pos(3, 2)},
		{buffer.Pos(3, 3), key.KeyRight, buffer.Pos(3, 4)},
		{buffer.Pos(1, 0), key.KeyUp, buffer.Pos(1, 0)},
		{buffer.Pos(1, 0), key.KeyLeft, buffer.Pos(1, 0)},
		{buffer.Pos(3, 3), key.KeyEnter, buffer.Pos(3, 3)},
	}

	for _, tt := range tests {
		if got := Step(tt.from, tt.k); got != tt.want {
			t.Errorf("Step(%v, %v) = %v, want %v", tt.from, tt.k, got, tt.want)
		}
	}

	if _, _, ok := ArrowDelta(key.KeyHome); ok {
		t.Error("ArrowDelta(Home) ok = true")
	}
}
