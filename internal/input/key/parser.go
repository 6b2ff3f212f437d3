package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse reads a press written as modifier names joined by "+" and a
// final key: "a", "Enter", "Ctrl+C", "Shift+Alt+Down". A lone "+" is the
// plus key, and an uppercase letter without modifiers implies Shift.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	var mods Modifier
	rest := spec
	for {
		i := strings.Index(rest, "+")
		if i <= 0 {
			break
		}
		name := rest[:i]
		mod := ModifierFromName(name)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, name, spec)
		}
		mods = mods.With(mod)
		rest = rest[i+1:]
	}
	return parseKey(rest, mods)
}

// MustParse is Parse for specs known to be valid. It panics otherwise.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}

func parseKey(name string, mods Modifier) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}

	switch k := KeyFromName(name); k {
	case KeyNone:
	case KeySpace:
		return NewRuneEvent(' ', mods), nil
	default:
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	r := runes[0]
	if mods.HasCtrl() {
		r = unicode.ToLower(r)
	} else if mods == ModNone && unicode.IsUpper(r) {
		mods = ModShift
	}
	return NewRuneEvent(r, mods), nil
}
