package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/boxedit/internal/engine/multicaret"
)

// interruptScheduler runs callbacks on the host's event loop by posting
// them as tcell interrupt events.
type interruptScheduler struct {
	screen tcell.Screen
}

// AfterFunc posts f to the event loop after d.
func (s interruptScheduler) AfterFunc(d time.Duration, f func()) multicaret.Timer {
	return time.AfterFunc(d, func() {
		// A full event queue drops the callback.
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(f))
	})
}
