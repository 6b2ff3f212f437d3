package multicaret

import (
	"sync"
	"time"
)

// DefaultBlinkInterval is the on and off time of the carets.
const DefaultBlinkInterval = 500 * time.Millisecond

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. Hosts must run f on their event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeScheduler schedules with time.AfterFunc. Its callbacks run on their
// own goroutine, so it suits hosts whose draw callback is goroutine-safe.
type TimeScheduler struct{}

// AfterFunc implements Scheduler.
func (TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// DrawFunc renders markers; visible is the current blink phase.
type DrawFunc func(markers []Marker, visible bool)

// Blinker toggles a marker set on a self-rescheduling timer.
// Each Start or Stop bumps a generation counter; a tick from an older
// generation does nothing, so a timer that fires after Stop is harmless.
type Blinker struct {
	mu sync.Mutex

	sched Scheduler
	on    time.Duration
	off   time.Duration
	draw  DrawFunc

	gen     uint64
	timer   Timer
	markers []Marker
	visible bool
}

// NewBlinker creates a stopped blinker. Non-positive intervals select
// DefaultBlinkInterval. draw may be nil.
func NewBlinker(sched Scheduler, on, off time.Duration, draw DrawFunc) *Blinker {
	if sched == nil {
		sched = TimeScheduler{}
	}
	if on <= 0 {
		on = DefaultBlinkInterval
	}
	if off <= 0 {
		off = DefaultBlinkInterval
	}
	return &Blinker{sched: sched, on: on, off: off, draw: draw}
}

// Start shows markers immediately and begins blinking them. Calling Start
// again replaces the markers and restarts the phase. An empty set stops
// the blinker.
func (b *Blinker) Start(markers []Marker) {
	if len(markers) == 0 {
		b.Stop()
		return
	}

	b.mu.Lock()
	b.cancelLocked()
	b.markers = append([]Marker(nil), markers...)
	b.visible = true
	gen := b.gen
	b.timer = b.sched.AfterFunc(b.on, func() { b.tick(gen) })
	draw, snapshot := b.draw, b.markers
	b.mu.Unlock()

	if draw != nil {
		draw(snapshot, true)
	}
}

// Stop cancels blinking and erases the markers.
func (b *Blinker) Stop() {
	b.mu.Lock()
	had := len(b.markers) > 0
	b.cancelLocked()
	b.markers = nil
	b.visible = false
	draw := b.draw
	b.mu.Unlock()

	if had && draw != nil {
		draw(nil, false)
	}
}

func (b *Blinker) cancelLocked() {
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Blinker) tick(gen uint64) {
	b.mu.Lock()
	if gen != b.gen || len(b.markers) == 0 {
		b.mu.Unlock()
		return
	}

	b.visible = !b.visible
	next := b.off
	if b.visible {
		next = b.on
	}
	b.timer = b.sched.AfterFunc(next, func() { b.tick(gen) })
	draw, markers, visible := b.draw, b.markers, b.visible
	b.mu.Unlock()

	if draw != nil {
		draw(markers, visible)
	}
}

// Markers returns the markers being blinked.
func (b *Blinker) Markers() []Marker {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Marker(nil), b.markers...)
}

// Visible reports the current blink phase.
func (b *Blinker) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Running reports whether a marker set is being blinked.
func (b *Blinker) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.markers) > 0
}
