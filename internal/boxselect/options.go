package boxselect

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/input/key"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithChord sets the chord that arms box selection.
func WithChord(c key.Chord) Option {
	return func(e *Editor) {
		e.chord = c
	}
}

// WithLogger sets the logger. Entries carry component and editor fields.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithScheduler sets the scheduler that drives caret blinking. Its
// callbacks must run on the host's event loop.
func WithScheduler(s multicaret.Scheduler) Option {
	return func(e *Editor) {
		if s != nil {
			e.sched = s
		}
	}
}

// WithBlink sets the caret on and off intervals.
func WithBlink(on, off time.Duration) Option {
	return func(e *Editor) {
		e.blinkOn = on
		e.blinkOff = off
	}
}

// WithID sets the editor ID used in log entries.
func WithID(id uuid.UUID) Option {
	return func(e *Editor) {
		e.id = id
	}
}
