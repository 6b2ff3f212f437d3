package boxselect

import (
	"errors"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/coord"
	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/engine/pad"
	"github.com/dshills/boxedit/internal/highlight"
	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/input/mouse"
	"github.com/dshills/boxedit/internal/logging"
)

// Result reports how the editor treated an event.
type Result struct {
	// Handled means the host must suppress its default handling.
	Handled bool
}

var (
	handled   = Result{Handled: true}
	unhandled = Result{}
)

const (
	// dropMark tracks a linear drop point across the cut.
	dropMark = "boxselect.insertpoint"
	// undoGroup names the undo group of one gesture.
	undoGroup = "boxselect"
)

// Editor is the box-selection state machine for one buffer. It is not
// safe for concurrent use; the host calls it from its event loop.
type Editor struct {
	id  uuid.UUID
	log logrus.FieldLogger

	buf  Buffer
	view View
	hl   Highlighter
	clip Clipboard

	chord    key.Chord
	sched    multicaret.Scheduler
	blinkOn  time.Duration
	blinkOff time.Duration
	blink    *multicaret.Blinker

	state    State
	grab     Grab
	modality Modality
	mode     Mode

	// anchor and cursor are the gesture's corner points; bounds is the
	// normalized rectangle or span they describe.
	anchor buffer.Position
	cursor buffer.Position
	bounds bounds.Bounds
	dir    bounds.Direction

	// padding records the whitespace materialized for bounds.
	padding pad.Ledger

	grabStart     buffer.Position
	grabRowOffset int
	grabColOffset int

	boxCopy   bool
	backup    string
	hasBackup bool

	grouped bool
	closed  bool
}

// New creates an editor over buf, drawing through view.
func New(buf Buffer, view View, hl Highlighter, clip Clipboard, opts ...Option) *Editor {
	e := &Editor{
		id:    uuid.New(),
		log:   logging.Discard(),
		buf:   buf,
		view:  view,
		hl:    hl,
		clip:  clip,
		chord: key.DefaultChord,
		sched: multicaret.TimeScheduler{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.log = e.log.WithFields(logrus.Fields{
		"component": "boxselect",
		"editor":    e.id.String(),
	})
	e.blink = multicaret.NewBlinker(e.sched, e.blinkOn, e.blinkOff, e.drawCarets)
	return e
}

// ID returns the editor's instance ID.
func (e *Editor) ID() uuid.UUID { return e.id }

// State returns the lifecycle state.
func (e *Editor) State() State { return e.state }

// Grab returns the grab state.
func (e *Editor) Grab() Grab { return e.grab }

// Modality returns the input driving the current gesture.
func (e *Editor) Modality() Modality { return e.modality }

// Mode returns the shape of the live bounds.
func (e *Editor) Mode() Mode { return e.mode }

// Chord returns the arming chord.
func (e *Editor) Chord() key.Chord { return e.chord }

// Bounds returns the live bounds, if any.
func (e *Editor) Bounds() (bounds.Bounds, bool) {
	return e.bounds, !e.bounds.IsZero()
}

// Anchor returns the gesture's anchor point.
func (e *Editor) Anchor() buffer.Position { return e.anchor }

// Carets returns the multi-caret markers currently shown.
func (e *Editor) Carets() []multicaret.Marker {
	return e.blink.Markers()
}

// BoxCopy reports whether the last copy or cut came from a rectangle, so
// the next Ctrl+V pastes column-aligned.
func (e *Editor) BoxCopy() bool { return e.boxCopy }

// HandleKey processes a key press or release.
func (e *Editor) HandleKey(ev key.Event) Result {
	if e.closed {
		return unhandled
	}
	if ev.IsRelease() {
		return e.handleRelease(ev)
	}
	if !ev.IsPress() {
		return unhandled
	}

	if e.grab != GrabNone {
		if ev.Key == key.KeyEscape {
			e.Reset()
		}
		return handled
	}

	if e.chord.Engages(ev) {
		return e.handleChord()
	}

	switch {
	case ev.IsCtrlRune('c'):
		return e.handleCopy()
	case ev.IsCtrlRune('x'):
		return e.handleCut()
	case ev.IsCtrlRune('v'):
		return e.handlePaste()
	case ev.IsCtrlRune('z'):
		return e.handleUndo(false)
	case ev.IsCtrlRune('y'):
		return e.handleUndo(true)
	}

	switch ev.Key {
	case key.KeyEscape:
		return e.handleEscape()
	case key.KeyEnter:
		return e.handleEnter()
	case key.KeyBackspace:
		return e.handleBackspace()
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		return e.handleArrow(ev)
	}

	if e.printable(ev) {
		return e.handleRune(ev.Rune)
	}
	return unhandled
}

// HandlePointer processes a pointer event.
func (e *Editor) HandlePointer(ev mouse.Event) Result {
	if e.closed {
		return unhandled
	}

	switch {
	case ev.IsPrimaryPress():
		return e.pointerDown(ev)
	case ev.IsMotion():
		return e.pointerMove(ev)
	case ev.IsPrimaryRelease():
		return e.pointerUp(ev)
	}
	return unhandled
}

// Reset discards any rectangle, retracting its padding, and clears the
// selection highlight.
func (e *Editor) Reset() {
	e.discard()
	e.hl.Clear(highlight.TagSelection)
}

// Close resets the editor and stops its timers. Later events are ignored.
func (e *Editor) Close() {
	if e.closed {
		return
	}
	e.Reset()
	e.closed = true
	e.log.Debug("closed")
}

func (e *Editor) handleRelease(ev key.Event) Result {
	if e.state.gesture() && e.chord.Releases(ev) {
		e.commit()
		return handled
	}
	return unhandled
}

func (e *Editor) handleChord() Result {
	if e.state.gesture() {
		return handled
	}
	e.arm()
	return handled
}

func (e *Editor) handleEscape() Result {
	if e.state == StateIdle && e.bounds.IsZero() {
		return unhandled
	}
	e.Reset()
	return handled
}

func (e *Editor) handleArrow(ev key.Event) Result {
	if e.state.gesture() {
		if !e.chord.Held(ev.Modifiers) {
			return unhandled
		}
		if e.modality == ModalityMouse {
			return handled
		}
		e.modality = ModalityArrow
		e.extend(coord.Step(e.cursor, ev.Key))
		return handled
	}

	mods := ev.Modifiers.Keys()
	if mods == key.ModShift && e.mode == ModeBox && e.state.live() {
		dr, dc, _ := coord.ArrowDelta(ev.Key)
		e.nudge(dr, dc)
		return handled
	}
	if !mods.IsEmpty() {
		return unhandled
	}

	if ev.Key.IsHorizontal() {
		return e.collapse(ev.Key == key.KeyRight)
	}
	if e.state.live() {
		e.Reset()
	}
	return unhandled
}

// collapse drops the selection and rectangle, leaving the caret at the
// selection's start or end.
func (e *Editor) collapse(toEnd bool) Result {
	ext, selected := e.hl.Extent(highlight.TagSelection)
	if !selected && e.bounds.IsZero() {
		return unhandled
	}

	e.Reset()
	if selected {
		p := ext.Start
		if toEnd {
			p = ext.End
		}
		e.view.SetCaret(e.buf.Resolve(p))
	}
	return handled
}

func (e *Editor) handleEnter() Result {
	if e.mode == ModeBox && (e.state == StateDragging || e.state == StateCommitted) {
		e.enterTyping()
		return handled
	}
	if e.state == StateTyping {
		e.Reset()
	}
	return unhandled
}

func (e *Editor) handleBackspace() Result {
	e.commitPending()
	if e.mode == ModeBox && e.state.live() {
		e.backspace()
		return handled
	}
	// A linear selection wins over a stale rectangle: drop the rectangle
	// and let the host delete the selected text.
	if e.state != StateIdle || !e.bounds.IsZero() {
		e.discard()
	}
	return unhandled
}

func (e *Editor) handleRune(r rune) Result {
	e.commitPending()
	if e.mode == ModeBox && e.state.live() {
		e.typeRune(r)
		return handled
	}
	if e.state != StateIdle || !e.bounds.IsZero() {
		e.discard()
	}
	return unhandled
}

func (e *Editor) handleUndo(redo bool) Result {
	e.Reset()

	var (
		pos buffer.Position
		err error
	)
	if redo {
		pos, err = e.buf.Redo()
	} else {
		pos, err = e.buf.Undo()
	}

	switch {
	case errors.Is(err, buffer.ErrUndoDisabled):
		return unhandled
	case err != nil:
		e.log.WithError(err).WithField("redo", redo).Debug("undo skipped")
		return handled
	}
	e.view.SetCaret(pos)
	return handled
}

// printable reports whether ev types a character. While the chord is held
// its modifiers are ignored, so typing commits the gesture.
func (e *Editor) printable(ev key.Event) bool {
	if !ev.IsRune() || !unicode.IsPrint(ev.Rune) {
		return false
	}
	mods := ev.Modifiers
	if e.state.gesture() {
		mods = mods.Without(e.chord.Modifiers())
	}
	return mods&(key.ModCtrl|key.ModAlt|key.ModMeta) == 0
}

func (e *Editor) pointerDown(ev mouse.Event) Result {
	if e.state.gesture() {
		if e.modality != ModalityArrow {
			e.modality = ModalityMouse
		}
		return handled
	}

	pos := e.view.CellAt(ev.Position.X, ev.Position.Y)
	if e.hl.Contains(highlight.TagSelection, pos) {
		e.startGrab(pos)
		return handled
	}

	if e.state != StateIdle || !e.bounds.IsZero() {
		e.Reset()
	}
	return unhandled
}

func (e *Editor) pointerMove(ev mouse.Event) Result {
	if e.grab != GrabNone {
		e.moveGrab(e.view.CellAt(ev.Position.X, ev.Position.Y))
		return handled
	}

	if !e.state.gesture() {
		return unhandled
	}
	if e.modality == ModalityArrow {
		return handled
	}
	if !ev.PrimaryHeld() {
		return unhandled
	}

	e.modality = ModalityMouse
	w, h := e.view.CellSize()
	e.extend(coord.PixelToCell(ev.Position.X, ev.Position.Y, e.view.TopLeft(), w, h, e.dir.Right))
	return handled
}

func (e *Editor) pointerUp(ev mouse.Event) Result {
	if e.grab == GrabNone {
		if e.state.gesture() && e.modality == ModalityMouse {
			return handled
		}
		return unhandled
	}

	pos := e.view.CellAt(ev.Position.X, ev.Position.Y)
	if e.grab == GrabHeld {
		e.Reset()
		e.view.SetCaret(pos)
		return handled
	}
	e.drop(pos)
	return handled
}

func (e *Editor) setState(s State) {
	if e.state == s {
		return
	}
	e.log.WithFields(logrus.Fields{"from": e.state, "to": s}).Debug("state change")
	e.state = s
}

func (e *Editor) beginGroup() {
	if e.grouped {
		return
	}
	e.buf.BeginGroup(undoGroup)
	e.grouped = true
}

func (e *Editor) endGroup() {
	if !e.grouped {
		return
	}
	e.buf.EndGroup()
	e.grouped = false
}

func (e *Editor) drawCarets(markers []multicaret.Marker, visible bool) {
	if !visible {
		markers = nil
	}
	e.view.DrawCarets(markers)
}
