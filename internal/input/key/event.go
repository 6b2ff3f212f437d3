package key

import (
	"fmt"
	"time"
	"unicode"
)

// Action tells presses from releases.
type Action uint8

const (
	ActionPress Action = iota
	ActionRelease
)

func (a Action) String() string {
	if a == ActionRelease {
		return "release"
	}
	return "press"
}

// Event is one key press or release. Modifiers is the state before the
// event took effect, so the release of Alt still reports Alt held.
type Event struct {
	Key       Key
	Rune      rune // set for KeyRune
	Modifiers Modifier
	Action    Action
	Timestamp time.Time
}

// NewEvent returns a press stamped with the current time.
func NewEvent(k Key, r rune, mods Modifier) Event {
	return Event{Key: k, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

func NewRuneEvent(r rune, mods Modifier) Event   { return NewEvent(KeyRune, r, mods) }
func NewSpecialEvent(k Key, mods Modifier) Event { return NewEvent(k, 0, mods) }

// NewRelease returns the release of k.
func NewRelease(k Key, mods Modifier) Event {
	e := NewEvent(k, 0, mods)
	e.Action = ActionRelease
	return e
}

func (e Event) IsPress() bool   { return e.Action == ActionPress }
func (e Event) IsRelease() bool { return e.Action == ActionRelease }
func (e Event) IsRune() bool    { return e.Key == KeyRune && e.Rune != 0 }

// IsChar reports a printable rune typed without Ctrl, Alt or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.IsModified()
}

// IsModified reports whether a modifier key changes the meaning of the
// event. Shift on a rune is already folded into the rune.
func (e Event) IsModified() bool {
	mods := e.Modifiers.Keys()
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	return mods != ModNone
}

// IsCtrlRune reports Ctrl plus r, ignoring case.
func (e Event) IsCtrlRune(r rune) bool {
	return e.IsRune() && e.Modifiers.HasCtrl() && unicode.ToLower(e.Rune) == r
}

// String formats the event the way Parse reads it, e.g. "Ctrl+c" or
// "Shift+Left". Releases get a "release " prefix.
func (e Event) String() string {
	name := e.Key.String()
	mods := e.Modifiers.Keys()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
		mods = mods.Without(ModShift)
	}
	if mods != ModNone {
		name = mods.String() + "+" + name
	}
	if e.IsRelease() {
		return "release " + name
	}
	return name
}

// Equals compares key, rune, modifier keys and action. Timestamps and
// the pointer button are ignored.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers.Keys() == other.Modifiers.Keys() &&
		e.Action == other.Action
}

// Matches reports whether e equals the press described by spec.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	return err == nil && e.Equals(parsed)
}

func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{%s %s rune=%q mods=%s}", e.Action, e.Key, e.Rune, e.Modifiers)
}
