package boxselect

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/coord"
	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/highlight"
)

// arm starts a gesture anchored at the current caret. A live rectangle is
// retracted first.
func (e *Editor) arm() {
	if e.state.live() || !e.bounds.IsZero() {
		e.Reset()
	}
	e.hl.Clear(highlight.TagSelection)

	e.beginGroup()
	e.anchor = e.view.Caret()
	e.cursor = e.anchor
	e.dir = bounds.Direction{}
	e.modality = ModalityNone
	e.hl.Gate(highlight.TagBox)
	e.setState(StateArmed)
	e.log.WithField("anchor", e.anchor).Debug("armed")
}

// extend stretches the rectangle from the anchor to cursor. Old padding is
// retracted before the new rectangle is materialized.
func (e *Editor) extend(cursor buffer.Position) {
	e.cursor = cursor
	e.dir = bounds.DirectionOf(e.anchor, cursor, e.dir)
	nb, _ := bounds.Compute(&e.anchor, &e.cursor, true, nil, &e.dir)

	if e.state == StateDragging && nb.Equal(e.bounds) {
		e.bounds.Dir = e.dir
		return
	}

	e.install(nb)
	e.mode = ModeBox
	e.hl.Set(highlight.TagBox, nb.RowRanges()...)

	caret := coord.SnapIndex(nb.Start(), nb.End(), e.dir.Down, e.dir.Right)
	e.view.SetCaret(caret)
	e.blink.Start(multicaret.Markers(nb, caret.Col))
	e.setState(StateDragging)
}

// commit bakes the gesture's rectangle into the standard selection. A
// gesture that never produced a rectangle returns to idle untouched.
func (e *Editor) commit() {
	if e.bounds.IsZero() {
		e.discard()
		return
	}

	e.blink.Stop()
	e.hl.Ungate()
	e.hl.Clear(highlight.TagSelection)
	e.hl.Replace(highlight.TagBox, highlight.TagSelection)
	e.modality = ModalityNone
	e.setState(StateCommitted)
	e.log.WithField("bounds", e.bounds).Debug("committed")
}

// commitPending commits a gesture in progress so a key can act on it.
func (e *Editor) commitPending() {
	if e.state.gesture() {
		e.commit()
	}
}

// enterTyping turns the rectangle into a zero-width multi-caret at the
// caret column.
func (e *Editor) enterTyping() {
	caret := e.view.Caret()

	e.blink.Stop()
	e.hl.Ungate()
	e.hl.Clear(highlight.TagBox)
	e.hl.Clear(highlight.TagSelection)

	e.install(e.bounds.Caret(caret.Col))
	e.anchor, e.cursor = e.bounds.Start(), e.bounds.End()
	e.modality = ModalityNone
	e.view.SetCaret(caret)
	e.blink.Start(multicaret.Markers(e.bounds, caret.Col))
	e.setState(StateTyping)
}

// discard drops the rectangle and any grab, retracting padding. The
// standard selection highlight is kept.
func (e *Editor) discard() {
	e.blink.Stop()
	if e.grab != GrabNone {
		e.grab = GrabNone
		e.view.SetPointer(PointerText)
	}
	e.hl.Ungate()
	e.hl.Clear(highlight.TagBox)

	e.retract(e.bounds)
	e.padding.Reset()
	e.bounds = bounds.Bounds{}
	e.dir = bounds.Direction{}
	e.mode = ModeNone
	e.modality = ModalityNone
	e.setState(StateIdle)
	e.endGroup()
}

// install replaces the live rectangle with nb.
func (e *Editor) install(nb bounds.Bounds) {
	e.retract(e.bounds)
	e.materialize(nb)
	e.bounds = nb
}

// place moves the live rectangle to nb, rebasing the corner points, and
// shows one caret per row at the edit column.
func (e *Editor) place(nb bounds.Bounds) {
	e.bounds = nb
	e.anchor, e.cursor = nb.Start(), nb.End()

	markers := multicaret.Markers(nb, nb.BC)
	if m, ok := multicaret.Primary(markers); ok {
		e.view.SetCaret(m.Pos)
	}
	e.blink.Start(markers)
}

func (e *Editor) retract(b bounds.Bounds) {
	if b.IsZero() || !b.Box {
		return
	}
	if err := e.padding.Retract(e.buf, e.view, b); err != nil {
		e.log.WithError(err).WithField("bounds", b).Warn("retract failed")
	}
}

func (e *Editor) materialize(b bounds.Bounds) {
	if b.IsZero() || !b.Box {
		return
	}
	changed, err := e.padding.Materialize(e.buf, b)
	if err != nil {
		e.log.WithError(err).WithField("bounds", b).Warn("materialize failed")
		return
	}
	if changed {
		e.log.WithFields(logrus.Fields{"bounds": b}).Trace("materialized")
	}
}
