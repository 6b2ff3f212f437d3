package key

import "strings"

// Modifier is the set of modifier keys held during an event, plus the
// primary pointer button so pointer events can carry it.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt // Option on macOS
	ModMeta
	// ModButton1 is set while the primary pointer button is held.
	ModButton1
)

// modifierNames lists the bits in display order.
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModShift, "Shift"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModMeta, "Meta"},
	{ModButton1, "Button1"},
}

// modifierAliases maps lowercase spellings to modifiers.
var modifierAliases = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"super":   ModMeta,
}

func (m Modifier) Has(mod Modifier) bool         { return m&mod != 0 }
func (m Modifier) HasShift() bool                { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool                 { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool                  { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool                 { return m.Has(ModMeta) }
func (m Modifier) With(mod Modifier) Modifier    { return m | mod }
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// Keys drops the pointer button bit.
func (m Modifier) Keys() Modifier {
	return m.Without(ModButton1)
}

// IsEmpty reports whether no modifier key is held. The pointer button
// does not count.
func (m Modifier) IsEmpty() bool {
	return m.Keys() == ModNone
}

// String joins the held modifiers as in "Shift+Alt".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// ModifierFromName returns the modifier spelled name in any case, or
// ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
