package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/boxedit/internal/boxselect"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/highlight"
	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/input/mouse"
	"github.com/dshills/boxedit/internal/logging"
)

// quitSignal is posted to stop the event loop.
type quitSignal struct{}

// Host runs one editor in a terminal. Every method except Post and Quit
// must be called from the event loop.
type Host struct {
	screen tcell.Screen
	buf    *buffer.Buffer
	hl     *highlight.Store
	clip   boxselect.Clipboard
	ed     *boxselect.Editor
	log    logrus.FieldLogger

	sched        multicaret.Scheduler
	tracker      *mouse.Tracker
	theme        Theme
	chord        key.Chord
	blinkOn      time.Duration
	blinkOff     time.Duration
	releaseDelay time.Duration
	cellW, cellH int

	top     int
	caret   buffer.Position
	carets  []multicaret.Marker
	pointer boxselect.Pointer

	// selAnchor is where a host linear selection started.
	selAnchor buffer.Position
	selecting bool
	pasting   bool

	chordHeld    bool
	chordGen     uint64
	releaseTimer multicaret.Timer

	quit bool
}

// New creates a host editing buf on screen. The screen is initialized by
// Init.
func New(screen tcell.Screen, buf *buffer.Buffer, clip boxselect.Clipboard, opts ...Option) *Host {
	h := &Host{
		screen:       screen,
		buf:          buf,
		hl:           highlight.New(),
		clip:         clip,
		log:          logging.Discard(),
		tracker:      mouse.NewTracker(),
		theme:        DefaultTheme(),
		chord:        key.DefaultChord,
		releaseDelay: DefaultReleaseDelay,
		cellW:        1,
		cellH:        1,
		top:          1,
		caret:        buffer.Pos(1, 0),
	}
	h.sched = interruptScheduler{screen: screen}
	for _, opt := range opts {
		opt(h)
	}

	h.ed = boxselect.New(buf, h, h.hl, clip,
		boxselect.WithScheduler(h.sched),
		boxselect.WithChord(h.chord),
		boxselect.WithLogger(h.log),
		boxselect.WithBlink(h.blinkOn, h.blinkOff),
	)
	h.log = logging.WithComponent(h.log, "term")
	return h
}

// Init initializes the screen and enables mouse and bracketed paste.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	h.screen.EnableMouse()
	h.screen.EnablePaste()
	return nil
}

// Close shuts down the editor and restores the terminal.
func (h *Host) Close() {
	h.ed.Close()
	if h.releaseTimer != nil {
		h.releaseTimer.Stop()
	}
	h.screen.Fini()
}

// Editor returns the hosted editor.
func (h *Host) Editor() *boxselect.Editor { return h.ed }

// Highlights returns the highlight store the host draws.
func (h *Host) Highlights() *highlight.Store { return h.hl }

// SetTheme replaces the colors.
func (h *Host) SetTheme(t Theme) { h.theme = t }

// Run draws and processes events until ctx is done, Ctrl+Q is pressed or
// the screen is finalized.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			h.Quit()
		case <-done:
		}
	}()

	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !h.HandleEvent(ev) {
			return nil
		}
	}
}

// Post runs f on the event loop. It is safe to call from any goroutine.
func (h *Host) Post(f func()) error {
	return h.screen.PostEvent(tcell.NewEventInterrupt(f))
}

// Quit stops Run. It is safe to call from any goroutine.
func (h *Host) Quit() {
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
}

// HandleEvent processes one tcell event and redraws. It returns false once
// the host should stop.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventPaste:
		h.handlePaste(ev.Start())
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case quitSignal:
			h.quit = true
		case func():
			data()
		}
	}

	if h.quit {
		return false
	}
	h.Draw()
	return true
}

func (h *Host) CellSize() (int, int)             { return h.cellW, h.cellH }
func (h *Host) TopLeft() buffer.Position         { return buffer.Pos(h.top, 0) }
func (h *Host) Caret() buffer.Position           { return h.caret }
func (h *Host) SetCaret(pos buffer.Position)     { h.caret = pos }
func (h *Host) SetPointer(p boxselect.Pointer)   { h.pointer = p }
func (h *Host) DrawCarets(m []multicaret.Marker) { h.carets = m }

// CellAt returns the existing cell under the pointer offset, mapping the
// terminal column through tab stops and wide runes.
func (h *Host) CellAt(x, y int) buffer.Position {
	row := h.top + y/h.cellH
	if row > h.buf.LineCount() {
		return h.buf.End()
	}
	return h.buf.Resolve(buffer.Pos(row, h.buf.ColumnAtDisplay(row, x/h.cellW)))
}
