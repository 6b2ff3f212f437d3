package highlight

import (
	"errors"
	"sync"
	"testing"

	"github.com/dshills/boxedit/internal/engine/buffer"
)

func rowRange(row, c1, c2 int) buffer.Range {
	return buffer.RowRange(row, c1, c2)
}

func TestStoreAddAndRanges(t *testing.T) {
	s := New()

	if !s.Add(TagSelection, rowRange(3, 1, 4), rowRange(1, 1, 4), rowRange(2, 2, 2)) {
		t.Fatal("Add() = false on open store")
	}

	got := s.Ranges(TagSelection)
	if len(got) != 2 {
		t.Fatalf("Ranges() = %v, want 2 ranges (empty dropped)", got)
	}
	if got[0].Start.Row != 1 || got[1].Start.Row != 3 {
		t.Errorf("Ranges() not sorted: %v", got)
	}

	ext, ok := s.Extent(TagSelection)
	if !ok || ext.Start != buffer.Pos(1, 1) || ext.End != buffer.Pos(3, 4) {
		t.Errorf("Extent() = %v, %v", ext, ok)
	}
}

func TestStoreMergesOverlaps(t *testing.T) {
	s := New()
	s.Add("t", rowRange(1, 0, 3), rowRange(1, 2, 6), rowRange(1, 6, 8))

	got := s.Ranges("t")
	if len(got) != 1 || got[0] != rowRange(1, 0, 8) {
		t.Errorf("Ranges() = %v, want single [1.0:1.8)", got)
	}
}

func TestStoreContains(t *testing.T) {
	s := New()
	s.Add(TagBox, rowRange(1, 1, 3), rowRange(2, 1, 3))

	tests := []struct {
		pos  buffer.Position
		want bool
	}{
		{buffer.Pos(1, 1), true},
		{buffer.Pos(2, 2), true},
		{buffer.Pos(2, 3), false},
		{buffer.Pos(3, 1), false},
	}

	for _, tt := range tests {
		if got := s.Contains(TagBox, tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	if tags := s.TagsAt(buffer.Pos(1, 2)); len(tags) != 1 || tags[0] != TagBox {
		t.Errorf("TagsAt() = %v, want [%s]", tags, TagBox)
	}
}

func TestStoreGate(t *testing.T) {
	s := New()
	s.Add(TagSelection, rowRange(1, 0, 2))

	s.Gate(TagBox)
	if !s.Gated() {
		t.Fatal("Gated() = false after Gate")
	}

	if s.Add(TagSelection, rowRange(2, 0, 2)) {
		t.Error("Add(sel) allowed while gated")
	}
	if s.Clear(TagSelection) {
		t.Error("Clear(sel) allowed while gated")
	}
	if !errors.Is(s.Check(TagSelection), ErrGated) {
		t.Error("Check(sel) should return ErrGated")
	}
	if len(s.Ranges(TagSelection)) != 1 {
		t.Error("gated tag changed")
	}

	if !s.Set(TagBox, rowRange(4, 0, 1)) {
		t.Error("Set(box) refused while box is allowed")
	}
	if s.Replace(TagBox, TagSelection) {
		t.Error("Replace(box, sel) allowed while sel is gated")
	}

	s.Ungate()
	if s.Check(TagSelection) != nil {
		t.Error("Check(sel) failed after Ungate")
	}
	if !s.Replace(TagBox, TagSelection) {
		t.Fatal("Replace() refused after Ungate")
	}
	if s.Has(TagBox) {
		t.Error("Replace() left ranges on the source tag")
	}
	if got := len(s.Ranges(TagSelection)); got != 2 {
		t.Errorf("Ranges(sel) len = %d, want 2", got)
	}
}

func TestStoreRevision(t *testing.T) {
	s := New()
	r0 := s.Revision()

	s.Add("t", rowRange(1, 0, 1))
	s.Clear("t")
	if s.Revision() != r0+2 {
		t.Errorf("Revision() = %d, want %d", s.Revision(), r0+2)
	}
	if _, ok := s.Extent("t"); ok {
		t.Error("Extent() ok after Clear")
	}
}

func TestStoreSet(t *testing.T) {
	s := New()
	s.Add(TagSelection, rowRange(1, 0, 2), rowRange(2, 0, 2))
	r0 := s.Revision()

	if !s.Set(TagSelection, rowRange(4, 1, 3)) {
		t.Fatal("Set() = false on open store")
	}
	got := s.Ranges(TagSelection)
	if len(got) != 1 || got[0] != rowRange(4, 1, 3) {
		t.Errorf("Ranges() = %v, want only [4.1:4.3)", got)
	}
	if s.Revision() != r0+1 {
		t.Errorf("Revision() = %d, want %d", s.Revision(), r0+1)
	}

	s.Gate(TagBox)
	if s.Set(TagSelection, rowRange(5, 0, 1)) {
		t.Error("Set() = true while gated")
	}
	if got := s.Ranges(TagSelection); len(got) != 1 || got[0] != rowRange(4, 1, 3) {
		t.Errorf("gated Set() changed ranges to %v", got)
	}
}

func TestStoreSetNeverObservedEmpty(t *testing.T) {
	s := New()
	s.Set("t", rowRange(1, 0, 1))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Set("t", rowRange(1+i%3, 0, 1))
		}
	}()

	empty := 0
	for i := 0; i < 1000; i++ {
		if !s.Has("t") {
			empty++
		}
	}
	wg.Wait()
	if empty != 0 {
		t.Errorf("Has() = false %d times during Set()", empty)
	}
}
