package key

import (
	"errors"
	"testing"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		spec    string
		want    Chord
		wantErr bool
	}{
		{"shift+alt", Chord{KeyShift, KeyAlt}, false},
		{"Ctrl-Shift", Chord{KeyCtrl, KeyShift}, false},
		{"alt shift", Chord{KeyAlt, KeyShift}, false},
		{"shift", Chord{}, true},
		{"shift+shift", Chord{}, true},
		{"shift+a", Chord{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseChord(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidChord) {
					t.Errorf("ParseChord(%q) error = %v, want ErrInvalidChord", tt.spec, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChord(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseChord(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestChordEngages(t *testing.T) {
	c := DefaultChord

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"alt while shift held", NewSpecialEvent(KeyAlt, ModShift), true},
		{"shift while alt held", NewSpecialEvent(KeyShift, ModAlt), true},
		{"shift alone", NewSpecialEvent(KeyShift, ModNone), false},
		{"alt alone", NewSpecialEvent(KeyAlt, ModNone), false},
		{"ctrl while shift held", NewSpecialEvent(KeyCtrl, ModShift), false},
		{"release", NewRelease(KeyAlt, ModShift|ModAlt), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Engages(tt.event); got != tt.want {
				t.Errorf("Engages(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestChordHeldAndReleases(t *testing.T) {
	c := DefaultChord

	if !c.Held(ModShift | ModAlt | ModButton1) {
		t.Error("Held() = false with both modifiers")
	}
	if c.Held(ModShift) {
		t.Error("Held() = true with one modifier")
	}
	if !c.Releases(NewRelease(KeyShift, ModShift|ModAlt)) {
		t.Error("Releases(Shift up) = false")
	}
	if c.Releases(NewRelease(KeyCtrl, ModCtrl)) {
		t.Error("Releases(Ctrl up) = true")
	}
	if c.Modifiers() != ModShift|ModAlt {
		t.Errorf("Modifiers() = %v", c.Modifiers())
	}
	if c.String() != "Shift+Alt" {
		t.Errorf("String() = %q", c.String())
	}
}
