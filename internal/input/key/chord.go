package key

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChord is returned when a chord specification does not name two
// distinct modifier keys.
var ErrInvalidChord = errors.New("invalid chord")

// Chord is a pair of modifier keys that arm box selection when held together.
type Chord struct {
	First  Key
	Second Key
}

// DefaultChord is Shift+Alt.
var DefaultChord = Chord{First: KeyShift, Second: KeyAlt}

// ParseChord parses "shift+alt" style specifications.
func ParseChord(spec string) (Chord, error) {
	parts := strings.FieldsFunc(spec, func(r rune) bool {
		return r == '+' || r == '-' || r == ' '
	})
	if len(parts) != 2 {
		return Chord{}, fmt.Errorf("%w: %q needs two keys", ErrInvalidChord, spec)
	}

	c := Chord{First: KeyFromName(parts[0]), Second: KeyFromName(parts[1])}
	if !c.First.IsModifierKey() || !c.Second.IsModifierKey() || c.First == c.Second {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidChord, spec)
	}
	return c, nil
}

// String returns the chord as "Shift+Alt".
func (c Chord) String() string {
	return c.First.String() + "+" + c.Second.String()
}

// Modifiers returns the modifier bits of both chord keys.
func (c Chord) Modifiers() Modifier {
	return c.First.Modifier() | c.Second.Modifier()
}

// Includes returns true if k is one of the chord keys.
func (c Chord) Includes(k Key) bool {
	return k == c.First || k == c.Second
}

// Engages returns true when e presses one chord key while the other
// chord key's modifier is already held, in either order.
func (c Chord) Engages(e Event) bool {
	if !e.IsPress() {
		return false
	}
	switch e.Key {
	case c.First:
		return e.Modifiers.Has(c.Second.Modifier())
	case c.Second:
		return e.Modifiers.Has(c.First.Modifier())
	}
	return false
}

// Held returns true if both chord modifiers are set in mods.
func (c Chord) Held(mods Modifier) bool {
	return mods.Has(c.First.Modifier()) && mods.Has(c.Second.Modifier())
}

// Releases returns true when e releases either chord key.
func (c Chord) Releases(e Event) bool {
	return e.IsRelease() && c.Includes(e.Key)
}
