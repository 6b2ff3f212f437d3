package boxselect

import (
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/highlight"
)

// typeRune inserts r at the left edge of every row and shifts the
// rectangle one column right. A selection highlight moves with it.
func (e *Editor) typeRune(r rune) {
	b := e.bounds
	e.materialize(b)

	text := string(r)
	for _, s := range multicaret.TypeAt(b, 1) {
		if _, err := e.buf.Insert(s.Pos(), text); err != nil {
			e.log.WithError(err).WithField("pos", s.Pos()).Warn("type failed")
		}
	}

	nb := b.Shift(0, 1)
	if len(e.hl.Ranges(highlight.TagSelection)) > 0 {
		e.hl.Set(highlight.TagSelection, nb.RowRanges()...)
	}
	e.place(nb)
	e.setState(StateTyping)
}

// backspace cuts a highlighted selection, collapsing the rectangle to its
// left edge. Without a selection it deletes the character left of the edge
// on every row and shifts the rectangle one column left.
func (e *Editor) backspace() {
	b := e.bounds

	if ranges := e.hl.Ranges(highlight.TagSelection); len(ranges) > 0 {
		e.hl.Clear(highlight.TagSelection)
		e.cutRanges(ranges)
		e.place(b.Caret(b.BC))
		e.setState(StateTyping)
		return
	}

	if b.BC == 0 {
		e.place(b)
		e.setState(StateTyping)
		return
	}

	e.materialize(b)
	for _, s := range multicaret.TypeAt(b, -1) {
		from := buffer.Pos(s.Row, s.Col+s.Advance)
		if err := e.buf.Delete(from, s.Pos()); err != nil {
			e.log.WithError(err).WithField("pos", s.Pos()).Warn("backspace failed")
		}
	}
	e.place(b.Shift(0, -1))
	e.setState(StateTyping)
}

// nudge moves the rectangle one cell. Highlighted content moves with it;
// an unhighlighted rectangle only moves its padding and carets.
func (e *Editor) nudge(dr, dc int) {
	src := e.bounds
	nb := src.Shift(dr, dc)
	if nb.Equal(src) {
		return
	}

	ranges := e.hl.Ranges(highlight.TagSelection)
	if len(ranges) == 0 {
		e.install(nb)
		e.place(nb)
		return
	}

	e.hl.Clear(highlight.TagSelection)
	e.relocate(ranges, nb.Start(), false)
}
