package boxselect

// State is the selection lifecycle state.
type State uint8

const (
	// StateIdle means no box gesture and no live rectangle.
	StateIdle State = iota
	// StateArmed means the chord is held but no rectangle exists yet.
	StateArmed
	// StateDragging means the chord is held and a rectangle follows input.
	StateDragging
	// StateCommitted means the rectangle is baked into the selection.
	StateCommitted
	// StateTyping means the rectangle is a multi-caret typing aid.
	StateTyping
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	case StateCommitted:
		return "committed"
	case StateTyping:
		return "typing"
	default:
		return "unknown"
	}
}

// live reports whether a committed rectangle can be edited.
func (s State) live() bool {
	return s == StateCommitted || s == StateTyping
}

// gesture reports whether the chord gesture is in progress.
func (s State) gesture() bool {
	return s == StateArmed || s == StateDragging
}

// Grab tracks pointer relocation of a selection.
type Grab uint8

const (
	// GrabNone means no selection is grabbed.
	GrabNone Grab = iota
	// GrabHeld means the pointer pressed inside the selection.
	GrabHeld
	// GrabMoving means the grabbed selection is being dragged.
	GrabMoving
)

// String returns the grab name.
func (g Grab) String() string {
	switch g {
	case GrabNone:
		return "none"
	case GrabHeld:
		return "held"
	case GrabMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Modality is the input driving a gesture. A gesture is driven by one
// modality only; input from the other is ignored until the chord is
// released.
type Modality uint8

const (
	ModalityNone Modality = iota
	ModalityMouse
	ModalityArrow
)

// String returns the modality name.
func (m Modality) String() string {
	switch m {
	case ModalityNone:
		return "none"
	case ModalityMouse:
		return "mouse"
	case ModalityArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Mode is the shape of the live bounds.
type Mode uint8

const (
	// ModeNone means there are no live bounds.
	ModeNone Mode = iota
	// ModeLinear means the bounds describe an ordinary text span.
	ModeLinear
	// ModeBox means the bounds describe a rectangle.
	ModeBox
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeLinear:
		return "linear"
	case ModeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Pointer is the pointer affordance the host should show.
type Pointer uint8

const (
	// PointerText is the ordinary text cursor.
	PointerText Pointer = iota
	// PointerMove signals a selection being dragged.
	PointerMove
)

// String returns the pointer name.
func (p Pointer) String() string {
	if p == PointerMove {
		return "move"
	}
	return "text"
}
