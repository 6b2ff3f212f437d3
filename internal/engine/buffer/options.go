package buffer

import "github.com/dshills/boxedit/internal/engine/history"

// DefaultTabWidth is the tab stop interval for display columns.
const DefaultTabWidth = 8

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithTabWidth sets the tab stop interval. Non-positive widths are
// ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithMaxUndo keeps at most entries undo groups; zero or less means
// history.DefaultMaxEntries.
func WithMaxUndo(entries int) Option {
	return func(b *Buffer) { b.history = history.New(entries) }
}

// WithoutUndo turns off undo recording. Undo and Redo then return
// ErrUndoDisabled.
func WithoutUndo() Option {
	return func(b *Buffer) { b.history = nil }
}
