package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/input/mouse"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   key.Event
		wantOK bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.NewRuneEvent('a', key.ModNone), true},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl), key.NewRuneEvent('c', key.ModCtrl), true},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone), true},
		{"chord arrow", tcell.NewEventKey(tcell.KeyDown, 0, chordMods), key.NewSpecialEvent(key.KeyDown, key.ModShift|key.ModAlt), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone), true},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyPageDown, key.ModNone), true},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("convertKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equals(tt.want) {
				t.Errorf("convertKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertMod(t *testing.T) {
	got := convertMod(tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)
	want := key.ModShift | key.ModCtrl | key.ModAlt | key.ModMeta
	if got != want {
		t.Errorf("convertMod() = %v, want %v", got, want)
	}
	if got := convertMod(tcell.ModNone); got != key.ModNone {
		t.Errorf("convertMod(none) = %v, want none", got)
	}
}

func TestConvertButtons(t *testing.T) {
	tests := []struct {
		in   tcell.ButtonMask
		want mouse.ButtonMask
	}{
		{tcell.ButtonNone, 0},
		{tcell.ButtonPrimary, mouse.MaskLeft},
		{tcell.ButtonSecondary, mouse.MaskRight},
		{tcell.ButtonPrimary | tcell.ButtonMiddle, mouse.MaskLeft | mouse.MaskMiddle},
		{tcell.WheelUp, 0},
	}
	for _, tt := range tests {
		if got := convertButtons(tt.in); got != tt.want {
			t.Errorf("convertButtons(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWheelDelta(t *testing.T) {
	if got := wheelDelta(tcell.WheelUp); got >= 0 {
		t.Errorf("wheelDelta(up) = %d, want negative", got)
	}
	if got := wheelDelta(tcell.WheelDown); got <= 0 {
		t.Errorf("wheelDelta(down) = %d, want positive", got)
	}
	if got := wheelDelta(tcell.ButtonPrimary); got != 0 {
		t.Errorf("wheelDelta(primary) = %d, want 0", got)
	}
}

func TestNewTheme(t *testing.T) {
	th := NewTheme("#264f78", "red", "white")

	if _, bg, _ := th.Selection.Decompose(); bg != tcell.GetColor("#264f78") {
		t.Errorf("selection background = %v", bg)
	}
	if _, bg, _ := th.Box.Decompose(); bg != tcell.ColorRed {
		t.Errorf("box background = %v, want red", bg)
	}
	if _, bg, _ := th.Caret.Decompose(); bg != tcell.ColorWhite {
		t.Errorf("caret background = %v, want white", bg)
	}
}
