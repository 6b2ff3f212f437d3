package buffer

import (
	"errors"
	"sync"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.Text() != "" {
		t.Errorf("Text() = %q, want empty", b.Text())
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if b.End() != Pos(1, 0) {
		t.Errorf("End() = %v, want 1.0", b.End())
	}
}

func TestNewBufferFromStringNormalizesLineEndings(t *testing.T) {
	b := NewBufferFromString("line1\r\nline2\rline3")

	want := []string{"line1", "line2", "line3"}
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line(%d) = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestBufferLineAccess(t *testing.T) {
	b := NewBufferFromString("héllo\n\nwörld")

	tests := []struct {
		row  int
		text string
		len  int
	}{
		{0, "", 0},
		{1, "héllo", 5},
		{2, "", 0},
		{3, "wörld", 5},
		{4, "", 0},
	}

	for _, tt := range tests {
		if got := b.Line(tt.row); got != tt.text {
			t.Errorf("Line(%d) = %q, want %q", tt.row, got, tt.text)
		}
		if got := b.LineLen(tt.row); got != tt.len {
			t.Errorf("LineLen(%d) = %d, want %d", tt.row, got, tt.len)
		}
	}
}

func TestBufferExistsAndResolve(t *testing.T) {
	b := NewBufferFromString("abc\nde")

	tests := []struct {
		name    string
		pos     Position
		exists  bool
		resolve Position
	}{
		{"start", Pos(1, 0), true, Pos(1, 0)},
		{"end of row", Pos(1, 3), true, Pos(1, 3)},
		{"past row end", Pos(2, 5), false, Pos(2, 2)},
		{"past last row", Pos(5, 1), false, Pos(2, 2)},
		{"row zero", Pos(0, 3), false, Pos(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Exists(tt.pos); got != tt.exists {
				t.Errorf("Exists(%v) = %v, want %v", tt.pos, got, tt.exists)
			}
			if got := b.Resolve(tt.pos); got != tt.resolve {
				t.Errorf("Resolve(%v) = %v, want %v", tt.pos, got, tt.resolve)
			}
		})
	}
}

func TestBufferGetAndOffset(t *testing.T) {
	b := NewBufferFromString("abc\nde\nfghi")

	tests := []struct {
		from, to Position
		text     string
	}{
		{Pos(1, 1), Pos(1, 3), "bc"},
		{Pos(1, 1), Pos(3, 2), "bc\nde\nfg"},
		{Pos(3, 2), Pos(1, 1), "bc\nde\nfg"},
		{Pos(2, 1), Pos(2, 9), "e"},
	}

	for _, tt := range tests {
		if got := b.Get(tt.from, tt.to); got != tt.text {
			t.Errorf("Get(%v, %v) = %q, want %q", tt.from, tt.to, got, tt.text)
		}
	}

	if got := b.Offset(Pos(1, 1), Pos(3, 2)); got != 9 {
		t.Errorf("Offset() = %d, want 9", got)
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewBufferFromString("Hello World")

	end, err := b.Insert(Pos(1, 5), ",")
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if end != Pos(1, 6) {
		t.Errorf("Insert() end = %v, want 1.6", end)
	}
	if b.Text() != "Hello, World" {
		t.Errorf("Text() = %q, want %q", b.Text(), "Hello, World")
	}
}

func TestBufferInsertMultiline(t *testing.T) {
	b := NewBufferFromString("ab")

	end, err := b.Insert(Pos(1, 1), "x\ny\nz")
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if end != Pos(3, 1) {
		t.Errorf("Insert() end = %v, want 3.1", end)
	}
	if b.Text() != "ax\ny\nzb" {
		t.Errorf("Text() = %q", b.Text())
	}
}

func TestBufferInsertVirtualClamps(t *testing.T) {
	b := NewBufferFromString("ab\nc")

	if _, err := b.Insert(Pos(9, 9), "!"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if b.Text() != "ab\nc!" {
		t.Errorf("Text() = %q, want %q", b.Text(), "ab\nc!")
	}

	if _, err := b.Insert(Pos(1, -1), "x"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Insert() error = %v, want ErrInvalidPosition", err)
	}
}

func TestBufferDeleteAndReplace(t *testing.T) {
	b := NewBufferFromString("abc\nde\nfghi")

	if err := b.Delete(Pos(2, 2), Pos(1, 1)); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if b.Text() != "a\nfghi" {
		t.Errorf("Text() after Delete = %q", b.Text())
	}

	end, err := b.Replace(Pos(2, 1), Pos(2, 3), "XY\nZ")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if end != Pos(3, 1) {
		t.Errorf("Replace() end = %v, want 3.1", end)
	}
	if b.Text() != "a\nfXY\nZi" {
		t.Errorf("Text() after Replace = %q", b.Text())
	}
}

func TestBufferApplyEdits(t *testing.T) {
	b := NewBufferFromString("abcd\nefgh\nijkl")

	edits := []Edit{
		NewDelete(RowRange(3, 1, 3)),
		NewDelete(RowRange(2, 1, 3)),
		NewDelete(RowRange(1, 1, 3)),
	}
	if err := b.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if b.Text() != "ad\neh\nil" {
		t.Errorf("Text() = %q", b.Text())
	}

	wrongOrder := []Edit{NewInsert(Pos(1, 0), "x"), NewInsert(Pos(2, 0), "y")}
	if err := b.ApplyEdits(wrongOrder); !errors.Is(err, ErrEditsOverlap) {
		t.Errorf("ApplyEdits() error = %v, want ErrEditsOverlap", err)
	}
}

func TestBufferUndoRedo(t *testing.T) {
	b := NewBufferFromString("abc\nde\nfghi")

	b.BeginGroup("type")
	for row := 1; row <= 3; row++ {
		if _, err := b.Insert(Pos(row, 1), "X"); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	b.EndGroup()

	if b.Text() != "aXbc\ndXe\nfXghi" {
		t.Fatalf("Text() = %q", b.Text())
	}

	pos, err := b.Undo()
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if pos != Pos(1, 1) {
		t.Errorf("Undo() pos = %v, want 1.1", pos)
	}
	if b.Text() != "abc\nde\nfghi" {
		t.Errorf("Text() after Undo = %q", b.Text())
	}

	if _, err := b.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if b.Text() != "aXbc\ndXe\nfXghi" {
		t.Errorf("Text() after Redo = %q", b.Text())
	}

	b.Undo()
	if _, err := b.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
}

func TestBufferUndoMultilineDelete(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	if err := b.Delete(Pos(1, 2), Pos(3, 1)); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := b.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if b.Text() != "one\ntwo\nthree" {
		t.Errorf("Text() after Undo = %q", b.Text())
	}
}

func TestBufferWithoutUndo(t *testing.T) {
	b := NewBufferFromString("a", WithoutUndo())
	b.Insert(Pos(1, 1), "b")

	if b.CanUndo() {
		t.Error("CanUndo() = true with undo disabled")
	}
	if _, err := b.Undo(); !errors.Is(err, ErrUndoDisabled) {
		t.Errorf("Undo() error = %v, want ErrUndoDisabled", err)
	}
}

func TestBufferMaxUndo(t *testing.T) {
	b := NewBufferFromString("", WithMaxUndo(2))
	for i := 0; i < 4; i++ {
		b.Insert(b.End(), "x")
	}

	undone := 0
	for b.CanUndo() {
		if _, err := b.Undo(); err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
		undone++
	}
	if undone != 2 {
		t.Errorf("undone %d entries, want 2", undone)
	}
	if b.Text() != "xx" {
		t.Errorf("Text() = %q, want %q", b.Text(), "xx")
	}
}

func TestBufferSetText(t *testing.T) {
	b := NewBufferFromString("abc")
	b.Insert(Pos(1, 0), "x")
	b.SetMark("m", Pos(1, 1), GravityLeft)

	rev := b.Revision()
	b.SetText("new\ntext")

	if b.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", b.LineCount())
	}
	if b.CanUndo() {
		t.Error("SetText() should clear undo history")
	}
	if _, ok := b.Mark("m"); ok {
		t.Error("SetText() should clear marks")
	}
	if b.Revision() == rev {
		t.Error("Revision() unchanged after SetText")
	}
}

func TestBufferConcurrentAccess(t *testing.T) {
	b := NewBufferFromString("start")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.Insert(Pos(1, 0), "x")
		}()
		go func() {
			defer wg.Done()
			_ = b.Text()
			_ = b.LineLen(1)
		}()
	}
	wg.Wait()

	if b.LineLen(1) != 15 {
		t.Errorf("LineLen(1) = %d, want 15", b.LineLen(1))
	}
}
