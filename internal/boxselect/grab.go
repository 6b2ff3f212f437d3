package boxselect

import (
	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/highlight"
)

// startGrab picks up the selection under pos. An ordinary selection gets
// linear bounds from its extent.
func (e *Editor) startGrab(pos buffer.Position) {
	if e.mode != ModeBox {
		ext, _ := e.hl.Extent(highlight.TagSelection)
		b, _ := bounds.Compute(&ext.Start, &ext.End, false, e.buf, nil)
		e.bounds = b
		e.anchor, e.cursor = b.Start(), b.End()
		e.mode = ModeLinear
		e.beginGroup()
	}

	e.blink.Stop()
	e.hl.Clear(highlight.TagBox)
	e.hl.Replace(highlight.TagSelection, highlight.TagBox)
	e.hl.Gate(highlight.TagBox)

	e.grab = GrabHeld
	e.grabStart = pos
	e.grabRowOffset = e.bounds.BR - pos.Row
	e.grabColOffset = e.bounds.BC - pos.Col
	e.view.SetCaret(pos)
	e.log.WithField("bounds", e.bounds).Debug("grabbed")
}

// moveGrab follows the pointer; the first move to another cell starts
// dragging the selection.
func (e *Editor) moveGrab(pos buffer.Position) {
	e.view.SetCaret(pos)
	if e.grab == GrabHeld && pos != e.grabStart {
		e.grab = GrabMoving
		e.view.SetPointer(PointerMove)
	}
}

// drop moves the grabbed selection to pos.
func (e *Editor) drop(pos buffer.Position) {
	e.grab = GrabNone
	e.view.SetPointer(PointerText)
	e.hl.Ungate()
	ranges := e.hl.Ranges(highlight.TagBox)
	e.hl.Clear(highlight.TagBox)

	if e.mode == ModeBox {
		target := buffer.Pos(pos.Row+e.grabRowOffset, pos.Col+e.grabColOffset).Clamp()
		e.relocate(ranges, target, true)
		return
	}
	e.relocateLinear(ranges, pos)
}

// relocate moves the rectangle's content to target through the clipboard,
// restoring the clipboard afterwards. When track is set, target is in
// pre-cut coordinates and follows the cut like a left-gravity mark;
// otherwise it is already in post-cut coordinates.
func (e *Editor) relocate(ranges []buffer.Range, target buffer.Position, track bool) {
	src := e.bounds
	text := e.rangeText(ranges)
	e.writeClipboard(text)

	for i := len(ranges) - 1; i >= 0; i-- {
		r := ranges[i]
		if r.IsEmpty() {
			continue
		}
		if err := e.buf.Delete(r.Start, r.End); err != nil {
			e.log.WithError(err).WithField("range", r).Warn("cut failed")
			continue
		}
		if track {
			target = buffer.TransformPosition(target, r.Start, r.End, r.Start, buffer.GravityLeft)
		}
	}

	// Retract along the left edge only; the source columns no longer exist.
	e.retract(src.Caret(src.BC))
	e.bounds = bounds.Bounds{}

	e.pasteText(target, text)
	nb := src.At(target.Row, target.Col)
	e.materialize(nb)
	e.restoreClipboard()

	e.hl.Set(highlight.TagSelection, nb.RowRanges()...)
	e.bounds = nb
	e.anchor, e.cursor = nb.Start(), nb.End()
	e.mode = ModeBox
	e.view.SetCaret(target)
	e.blink.Stop()
	e.setState(StateCommitted)
	e.log.WithField("bounds", nb).Debug("moved")
}

// relocateLinear moves ordinary selected text to pos.
func (e *Editor) relocateLinear(ranges []buffer.Range, pos buffer.Position) {
	text := e.rangeText(ranges)
	e.writeClipboard(text)

	e.buf.SetMark(dropMark, pos, buffer.GravityLeft)
	e.cutRanges(ranges)
	ip, ok := e.buf.Mark(dropMark)
	e.buf.DeleteMark(dropMark)
	if !ok {
		ip = e.buf.Resolve(pos)
	}

	end, err := e.buf.Insert(ip, text)
	if err != nil {
		e.log.WithError(err).WithField("pos", ip).Warn("drop failed")
		end = ip
	}
	e.restoreClipboard()

	b, _ := bounds.Compute(&ip, &end, false, e.buf, nil)
	e.bounds = b
	e.anchor, e.cursor = ip, end
	e.mode = ModeLinear
	e.hl.Set(highlight.TagSelection, buffer.NewRange(ip, end))
	e.view.SetCaret(end)
	e.setState(StateCommitted)
	e.log.WithField("bounds", b).Debug("moved")
}
