package mouse

import (
	"time"

	"github.com/dshills/boxedit/internal/input/key"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

var buttonNames = [...]string{"none", "left", "middle", "right"}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "none"
}

// Mask is b's bit in a ButtonMask. ButtonNone has none.
func (b Button) Mask() ButtonMask {
	if b == ButtonNone {
		return 0
	}
	return 1 << (b - 1)
}

// ButtonMask is the set of held buttons.
type ButtonMask uint8

const (
	MaskLeft ButtonMask = 1 << iota
	MaskMiddle
	MaskRight
)

func (m ButtonMask) Has(b Button) bool { return m&b.Mask() != 0 }

// Action is what happened in a pointer event. Drag is motion with a
// button held; Move is motion without.
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
	ActionMove
	ActionDrag
)

var actionNames = [...]string{"none", "press", "release", "move", "drag"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}

// Position is a pixel offset from the top-left of the text area.
type Position struct{ X, Y int }

func (p Position) Equal(o Position) bool { return p == o }

// Distance is the Manhattan distance to o.
func (p Position) Distance(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Event is one pointer event. Button is the button that changed on a
// press or release; Buttons is the set held afterwards.
type Event struct {
	Position  Position
	Button    Button
	Buttons   ButtonMask
	Modifiers key.Modifier
	Action    Action
	Timestamp time.Time
}

// NewEvent builds an event stamped now.
func NewEvent(action Action, x, y int, button Button, held ButtonMask, mods key.Modifier) Event {
	return Event{
		Position:  Position{X: x, Y: y},
		Button:    button,
		Buttons:   held,
		Modifiers: mods,
		Action:    action,
		Timestamp: time.Now(),
	}
}

func (e Event) PrimaryHeld() bool      { return e.Buttons.Has(ButtonLeft) }
func (e Event) IsPrimaryPress() bool   { return e.Action == ActionPress && e.Button == ButtonLeft }
func (e Event) IsPrimaryRelease() bool { return e.Action == ActionRelease && e.Button == ButtonLeft }
func (e Event) IsMotion() bool         { return e.Action == ActionMove || e.Action == ActionDrag }
