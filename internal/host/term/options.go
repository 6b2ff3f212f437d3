package term

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/input/key"
)

// DefaultReleaseDelay is how long the host waits without a chord-carrying
// event before it treats the chord as released.
const DefaultReleaseDelay = 600 * time.Millisecond

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Host) {
		h.log = l
	}
}

// WithChord sets the arming chord.
func WithChord(c key.Chord) Option {
	return func(h *Host) {
		h.chord = c
	}
}

// WithBlink sets the caret blink phases.
func WithBlink(on, off time.Duration) Option {
	return func(h *Host) {
		h.blinkOn, h.blinkOff = on, off
	}
}

// WithTheme sets the colors.
func WithTheme(t Theme) Option {
	return func(h *Host) {
		h.theme = t
	}
}

// WithCellSize sets how many pointer units one terminal cell spans.
func WithCellSize(w, h int) Option {
	return func(host *Host) {
		if w > 0 && h > 0 {
			host.cellW, host.cellH = w, h
		}
	}
}

// WithReleaseDelay sets the synthesized chord release delay. Zero waits
// for the next event without the chord modifiers.
func WithReleaseDelay(d time.Duration) Option {
	return func(h *Host) {
		h.releaseDelay = d
	}
}

// WithScheduler replaces the interrupt-event scheduler, for tests.
func WithScheduler(s multicaret.Scheduler) Option {
	return func(h *Host) {
		h.sched = s
	}
}
