package mouse

import (
	"sync"
	"time"

	"github.com/dshills/boxedit/internal/input/key"
)

// Tracker turns raw pointer samples (position plus held-button mask) into
// press, release, drag and move events, and tracks the active drag.
type Tracker struct {
	mu sync.Mutex

	held ButtonMask
	last Position
	seen bool

	drag dragState
}

type dragState struct {
	active   bool
	button   Button
	startPos Position
	curPos   Position
}

// NewTracker creates a tracker with no buttons held.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update records a raw sample and returns the events it implies, in order:
// releases, then presses, then a drag or move when the position changed.
func (t *Tracker) Update(pos Position, mask ButtonMask, mods key.Modifier) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	var events []Event

	moved := !t.seen || !pos.Equal(t.last)
	t.seen = true
	t.last = pos

	if moved && t.held != 0 {
		t.drag.curPos = pos
		events = append(events, t.event(ActionDrag, pos, ButtonNone, t.held, mods, now))
	} else if moved && mask == 0 {
		events = append(events, t.event(ActionMove, pos, ButtonNone, 0, mods, now))
	}

	for _, b := range []Button{ButtonLeft, ButtonMiddle, ButtonRight} {
		if t.held.Has(b) && !mask.Has(b) {
			t.held &^= b.Mask()
			events = append(events, t.event(ActionRelease, pos, b, t.held, mods, now))
			if t.drag.active && t.drag.button == b {
				t.drag = dragState{}
			}
		}
	}

	for _, b := range []Button{ButtonLeft, ButtonMiddle, ButtonRight} {
		if !t.held.Has(b) && mask.Has(b) {
			t.held |= b.Mask()
			events = append(events, t.event(ActionPress, pos, b, t.held, mods, now))
			if !t.drag.active {
				t.drag = dragState{active: true, button: b, startPos: pos, curPos: pos}
			}
		}
	}

	return events
}

func (t *Tracker) event(a Action, pos Position, b Button, held ButtonMask, mods key.Modifier, now time.Time) Event {
	if held.Has(ButtonLeft) {
		mods = mods.With(key.ModButton1)
	} else {
		mods = mods.Without(key.ModButton1)
	}
	return Event{Position: pos, Button: b, Buttons: held, Modifiers: mods, Action: a, Timestamp: now}
}

// Held returns the buttons currently held.
func (t *Tracker) Held() ButtonMask {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}

// IsDragging returns true while a button is held.
func (t *Tracker) IsDragging() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drag.active
}

// DragStart returns where the current drag started.
func (t *Tracker) DragStart() (Position, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drag.startPos, t.drag.active
}

// DragDelta returns the distance dragged from the start position.
func (t *Tracker) DragDelta() Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Position{
		X: t.drag.curPos.X - t.drag.startPos.X,
		Y: t.drag.curPos.Y - t.drag.startPos.Y,
	}
}

// Moved reports whether the drag has travelled more than threshold.
func (t *Tracker) Moved(threshold int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drag.active && t.drag.curPos.Distance(t.drag.startPos) > threshold
}

// Reset clears all tracking state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held = 0
	t.seen = false
	t.drag = dragState{}
}
