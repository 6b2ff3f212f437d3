// Package clipboard provides clipboard adapters: the system clipboard via
// github.com/atotto/clipboard and an in-process clipboard for headless use.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Errors returned by clipboard adapters.
var (
	ErrEmpty       = errors.New("clipboard empty")
	ErrUnavailable = errors.New("clipboard unavailable")
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// normalize converts CRLF and CR line endings to LF.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// System is the operating system clipboard. When no clipboard utility is
// available it falls back to an in-process clipboard so copy and paste
// still work within one session.
type System struct {
	fallback *Memory
}

// NewSystem returns a system clipboard adapter.
func NewSystem() *System {
	return &System{fallback: NewMemory()}
}

// Supported reports whether a system clipboard utility was found.
func (s *System) Supported() bool {
	return !clipboard.Unsupported
}

// ReadText implements Clipboard.
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return s.fallback.ReadText()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if text == "" {
		return "", ErrEmpty
	}
	return normalize(text), nil
}

// WriteText implements Clipboard.
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return s.fallback.WriteText(text)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard. The zero value is not usable; call
// NewMemory.
type Memory struct {
	mu      sync.Mutex
	text    string
	set     bool
	readErr error
	writes  int
}

// MemoryOption configures a Memory clipboard.
type MemoryOption func(*Memory)

// WithText pre-loads the clipboard.
func WithText(text string) MemoryOption {
	return func(m *Memory) {
		m.text = text
		m.set = true
	}
}

// WithReadError makes every read fail with err.
func WithReadError(err error) MemoryOption {
	return func(m *Memory) {
		m.readErr = err
	}
}

// NewMemory returns an empty in-process clipboard.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ReadText implements Clipboard. An unwritten clipboard returns ErrEmpty.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return "", m.readErr
	}
	if !m.set {
		return "", ErrEmpty
	}
	return m.text, nil
}

// WriteText implements Clipboard.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = normalize(text)
	m.set = true
	m.writes++
	return nil
}

// Writes returns how many times the clipboard was written.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
