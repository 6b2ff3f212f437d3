package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/input/mouse"
)

func (h *Host) handleKey(ev *tcell.EventKey) {
	kev, ok := convertKey(ev)
	if !ok {
		return
	}
	if kev.IsCtrlRune('q') {
		h.quit = true
		return
	}
	if h.pasting {
		h.pasteKey(kev)
		return
	}

	h.syncChord(kev.Modifiers)
	if !h.ed.HandleKey(kev).Handled {
		h.defaultKey(kev)
	}
	h.scrollToCaret()
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()
	if d := wheelDelta(btns); d != 0 {
		h.scroll(d)
		return
	}

	mods := convertMod(ev.Modifiers())
	mask := convertButtons(btns)
	pos := mouse.Position{X: x * h.cellW, Y: y * h.cellH}

	// A chord click starts the rectangle where it lands.
	if !h.chordHeld && h.chord.Held(mods) && mask.Has(mouse.ButtonLeft) && h.tracker.Held() == 0 {
		h.caret = h.CellAt(pos.X, pos.Y)
	}
	h.syncChord(mods)

	for _, me := range h.tracker.Update(pos, mask, mods) {
		if !h.ed.HandlePointer(me).Handled {
			h.defaultPointer(me)
		}
	}
}

func (h *Host) handlePaste(start bool) {
	h.pasting = start
	if start {
		if h.chordHeld {
			h.releaseChord(key.ModNone)
		}
		h.ed.Reset()
	}
}

// syncChord keeps the synthesized chord in step with mods, the modifiers
// of the event about to be dispatched.
func (h *Host) syncChord(mods key.Modifier) {
	held := h.chord.Held(mods)
	switch {
	case held && !h.chordHeld:
		h.chordHeld = true
		h.ed.HandleKey(key.NewSpecialEvent(h.chord.Second, h.chord.First.Modifier()))
		h.armRelease()
	case held:
		h.armRelease()
	case h.chordHeld:
		h.releaseChord(mods)
	}
}

// armRelease restarts the release timer. While a button is held the
// chord stays down so a paused mouse drag does not commit.
func (h *Host) armRelease() {
	h.chordGen++
	if h.releaseTimer != nil {
		h.releaseTimer.Stop()
		h.releaseTimer = nil
	}
	if h.releaseDelay <= 0 {
		return
	}

	gen := h.chordGen
	h.releaseTimer = h.sched.AfterFunc(h.releaseDelay, func() {
		if gen != h.chordGen || !h.chordHeld {
			return
		}
		if h.tracker.Held() != 0 {
			h.armRelease()
			return
		}
		h.releaseChord(key.ModNone)
	})
}

func (h *Host) releaseChord(mods key.Modifier) {
	h.chordHeld = false
	h.chordGen++
	if h.releaseTimer != nil {
		h.releaseTimer.Stop()
		h.releaseTimer = nil
	}
	h.log.Debug("chord released")
	h.ed.HandleKey(key.NewRelease(h.chord.Second, mods))
}
