package script

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/boxedit/internal/boxselect"
	"github.com/dshills/boxedit/internal/clipboard"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/engine/multicaret"
	"github.com/dshills/boxedit/internal/highlight"
	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/input/mouse"
	"github.com/dshills/boxedit/internal/logging"
)

// ModuleName is the global table scripts use to drive the editor.
const ModuleName = "box"

// Session drives one editor over an in-memory buffer from Lua. Time only
// passes when the script calls box.wait, so blink behavior is reproducible.
type Session struct {
	Buffer     *buffer.Buffer
	View       *MemView
	Highlights *highlight.Store
	Clipboard  *clipboard.Memory
	Scheduler  *multicaret.ManualScheduler
	Editor     *boxselect.Editor

	state *State
	out   io.Writer
}

type sessionConfig struct {
	out        io.Writer
	log        logrus.FieldLogger
	chord      key.Chord
	bufOpts    []buffer.Option
	stateOpts  []StateOption
	blinkOn    time.Duration
	blinkOff   time.Duration
	clipboard  string
	hasClipSet bool
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

// WithOutput sends print output to w.
func WithOutput(w io.Writer) SessionOption {
	return func(c *sessionConfig) { c.out = w }
}

// WithLogger sets the editor's logger.
func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(c *sessionConfig) { c.log = l }
}

// WithChord sets the arming chord.
func WithChord(ch key.Chord) SessionOption {
	return func(c *sessionConfig) { c.chord = ch }
}

// WithBufferOptions passes options to the session buffer.
func WithBufferOptions(opts ...buffer.Option) SessionOption {
	return func(c *sessionConfig) { c.bufOpts = append(c.bufOpts, opts...) }
}

// WithStateOptions passes options to the Lua state.
func WithStateOptions(opts ...StateOption) SessionOption {
	return func(c *sessionConfig) { c.stateOpts = append(c.stateOpts, opts...) }
}

// WithBlink sets the caret blink phases.
func WithBlink(on, off time.Duration) SessionOption {
	return func(c *sessionConfig) { c.blinkOn, c.blinkOff = on, off }
}

// WithClipboardText seeds the session clipboard.
func WithClipboardText(text string) SessionOption {
	return func(c *sessionConfig) { c.clipboard, c.hasClipSet = text, true }
}

// NewSession creates a session editing text.
func NewSession(text string, opts ...SessionOption) *Session {
	cfg := sessionConfig{
		out:   io.Discard,
		log:   logging.Discard(),
		chord: key.DefaultChord,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var clipOpts []clipboard.MemoryOption
	if cfg.hasClipSet {
		clipOpts = append(clipOpts, clipboard.WithText(cfg.clipboard))
	}

	s := &Session{
		Buffer:     buffer.NewBufferFromString(text, cfg.bufOpts...),
		Highlights: highlight.New(),
		Clipboard:  clipboard.NewMemory(clipOpts...),
		Scheduler:  multicaret.NewManualScheduler(),
		state:      NewState(cfg.stateOpts...),
		out:        cfg.out,
	}
	s.View = NewMemView(s.Buffer)
	s.Editor = boxselect.New(s.Buffer, s.View, s.Highlights, s.Clipboard,
		boxselect.WithScheduler(s.Scheduler),
		boxselect.WithChord(cfg.chord),
		boxselect.WithLogger(cfg.log),
		boxselect.WithBlink(cfg.blinkOn, cfg.blinkOff),
	)

	s.state.SetGlobal("print", s.state.L.NewFunction(s.luaPrint))
	s.state.RegisterModule(ModuleName, s.module())
	return s
}

// Run executes the script at path.
func (s *Session) Run(ctx context.Context, path string) error {
	if err := s.state.DoFile(ctx, path); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

// RunString executes a Lua chunk.
func (s *Session) RunString(ctx context.Context, code string) error {
	return s.state.DoString(ctx, code)
}

// Close shuts down the editor and the Lua state.
func (s *Session) Close() error {
	s.Editor.Close()
	return s.state.Close()
}

func (s *Session) module() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"key":       s.luaKey,
		"release":   s.luaRelease,
		"type":      s.luaType,
		"down":      s.pointer(mouse.ActionPress),
		"move":      s.pointer(mouse.ActionDrag),
		"hover":     s.pointer(mouse.ActionMove),
		"up":        s.pointer(mouse.ActionRelease),
		"caret":     s.luaCaret,
		"text":      s.luaText,
		"state":     s.luaState,
		"bounds":    s.luaBounds,
		"selection": s.luaSelection,
		"carets":    s.luaCarets,
		"wait":      s.luaWait,
		"clipboard": s.luaClipboard,
		"reset":     s.luaReset,
		"expect":    s.luaExpect,
	}
}

func (s *Session) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(s.out, strings.Join(parts, "\t"))
	return 0
}

// box.key(spec) presses a key such as "Shift+Alt", "Ctrl+c" or
// "Shift+Alt+Down" and returns whether the editor handled it.
func (s *Session) luaKey(L *lua.LState) int {
	ev, err := key.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LBool(s.Editor.HandleKey(ev).Handled))
	return 1
}

// box.release(spec) releases the last key of spec.
func (s *Session) luaRelease(L *lua.LState) int {
	ev, err := key.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LBool(s.Editor.HandleKey(key.NewRelease(ev.Key, ev.Modifiers)).Handled))
	return 1
}

// box.type(text) types each rune of text and returns how many the editor
// handled.
func (s *Session) luaType(L *lua.LState) int {
	n := 0
	for _, r := range L.CheckString(1) {
		if s.Editor.HandleKey(key.NewRuneEvent(r, key.ModNone)).Handled {
			n++
		}
	}
	L.Push(lua.LNumber(n))
	return 1
}

// pointer returns box.down, box.move, box.hover or box.up, each taking a
// row and column.
func (s *Session) pointer(a mouse.Action) lua.LGFunction {
	return func(L *lua.LState) int {
		row, col := L.CheckInt(1), L.CheckInt(2)

		b, held := mouse.ButtonNone, mouse.MaskLeft
		switch a {
		case mouse.ActionPress:
			b = mouse.ButtonLeft
		case mouse.ActionRelease:
			b, held = mouse.ButtonLeft, 0
		case mouse.ActionMove:
			held = 0
		}

		ev := mouse.NewEvent(a, col, row-1, b, held, key.ModNone)
		L.Push(lua.LBool(s.Editor.HandlePointer(ev).Handled))
		return 1
	}
}

// box.caret([row, col]) moves the caret when given a position and returns
// the caret's row and column.
func (s *Session) luaCaret(L *lua.LState) int {
	if L.GetTop() >= 2 {
		s.View.SetCaret(buffer.Pos(L.CheckInt(1), L.CheckInt(2)))
	}
	c := s.View.Caret()
	L.Push(lua.LNumber(c.Row))
	L.Push(lua.LNumber(c.Col))
	return 2
}

// box.text([text]) replaces the buffer when given text and returns it.
func (s *Session) luaText(L *lua.LState) int {
	if L.GetTop() >= 1 {
		s.Editor.Reset()
		s.Buffer.SetText(L.CheckString(1))
	}
	L.Push(lua.LString(s.Buffer.Text()))
	return 1
}

func (s *Session) luaState(L *lua.LState) int {
	L.Push(lua.LString(s.Editor.State().String()))
	return 1
}

// box.bounds() returns {br, bc, er, ec, w, h, box} or nil.
func (s *Session) luaBounds(L *lua.LState) int {
	b, ok := s.Editor.Bounds()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	t := L.NewTable()
	t.RawSetString("br", lua.LNumber(b.BR))
	t.RawSetString("bc", lua.LNumber(b.BC))
	t.RawSetString("er", lua.LNumber(b.ER))
	t.RawSetString("ec", lua.LNumber(b.EC))
	t.RawSetString("w", lua.LNumber(b.W))
	t.RawSetString("h", lua.LNumber(b.H))
	t.RawSetString("box", lua.LBool(b.Box))
	L.Push(t)
	return 1
}

// box.selection() returns the selected text, one entry per range.
func (s *Session) luaSelection(L *lua.LState) int {
	t := L.NewTable()
	for _, r := range s.Highlights.Ranges(highlight.TagSelection) {
		t.Append(lua.LString(s.Buffer.Get(r.Start, r.End)))
	}
	L.Push(t)
	return 1
}

// box.carets() returns the number of carets currently drawn.
func (s *Session) luaCarets(L *lua.LState) int {
	L.Push(lua.LNumber(len(s.View.VisibleCarets())))
	return 1
}

// box.wait(ms) advances the session clock.
func (s *Session) luaWait(L *lua.LState) int {
	s.Scheduler.Advance(time.Duration(L.CheckInt(1)) * time.Millisecond)
	return 0
}

// box.clipboard([text]) sets the clipboard when given text and returns it.
func (s *Session) luaClipboard(L *lua.LState) int {
	if L.GetTop() >= 1 {
		if err := s.Clipboard.WriteText(L.CheckString(1)); err != nil {
			L.RaiseError("clipboard: %v", err)
			return 0
		}
	}
	text, _ := s.Clipboard.ReadText()
	L.Push(lua.LString(text))
	return 1
}

func (s *Session) luaReset(L *lua.LState) int {
	s.Editor.Reset()
	return 0
}

// box.expect(text) raises an error unless the buffer holds text.
func (s *Session) luaExpect(L *lua.LState) int {
	want := L.CheckString(1)
	if got := s.Buffer.Text(); got != want {
		L.RaiseError("buffer is %q, want %q", got, want)
	}
	return 0
}
