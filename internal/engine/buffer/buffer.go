package buffer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dshills/boxedit/internal/engine/history"
)

// Errors returned by buffer operations.
var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrRowOutOfRange   = errors.New("row out of range")
	ErrEditsOverlap    = errors.New("edits overlap or are not in reverse order")
	ErrNothingToUndo   = history.ErrNothingToUndo
	ErrNothingToRedo   = history.ErrNothingToRedo
	ErrUndoDisabled    = errors.New("undo disabled")
)

// Buffer is a line-oriented text buffer addressed by row/column positions.
// Positions passed to edit methods are resolved first: rows past the end
// clamp to the last row and columns past the end of a row clamp to its
// length. Every edit is recorded in the undo history and transforms marks.
// All methods are thread-safe.
type Buffer struct {
	mu       sync.RWMutex
	lines    []string
	marks    map[string]*mark
	history  *history.History
	revision uint64
	tabWidth int
}

// NewBuffer creates a new empty buffer (one empty row).
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:    []string{""},
		marks:    make(map[string]*mark),
		history:  history.New(history.DefaultMaxEntries),
		tabWidth: DefaultTabWidth,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// The initial content is not part of the undo history.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = strings.Split(normalizeLineEndings(s), "\n")
	return b
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Read Operations

// Text returns the full buffer content with rows joined by "\n".
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of every row.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.lines...)
}

// LineCount returns the number of rows. An empty buffer has one row.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Line returns the text of row (1-indexed), or "" when it does not exist.
func (b *Buffer) Line(row int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineLocked(row)
}

// LineLen returns the rune length of row, or 0 when it does not exist.
func (b *Buffer) LineLen(row int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return utf8.RuneCountInString(b.lineLocked(row))
}

// Exists returns true if pos names an existing row and a column within it.
func (b *Buffer) Exists(pos Position) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if pos.Row < 1 || pos.Row > len(b.lines) || pos.Col < 0 {
		return false
	}
	return pos.Col <= utf8.RuneCountInString(b.lines[pos.Row-1])
}

// RowExists returns true if row is within the buffer.
func (b *Buffer) RowExists(row int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return row >= 1 && row <= len(b.lines)
}

// Resolve clamps pos to the nearest existing position.
func (b *Buffer) Resolve(pos Position) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.resolveLocked(pos)
}

// End returns the position after the last character.
func (b *Buffer) End() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.endLocked()
}

// Get returns the text between two positions, in either order.
func (b *Buffer) Get(from, to Position) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r := NewRange(b.resolveLocked(from), b.resolveLocked(to))
	return b.getLocked(r.Start, r.End)
}

// Compare orders two positions after resolving them.
func (b *Buffer) Compare(a, c Position) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.resolveLocked(a).Compare(b.resolveLocked(c))
}

// Offset returns the number of characters between two positions, counting
// each row break as one character.
func (b *Buffer) Offset(from, to Position) int {
	return utf8.RuneCountInString(b.Get(from, to))
}

// Revision returns a counter incremented by every edit.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// Write Operations

// Insert inserts text at pos and returns the position after the inserted text.
func (b *Buffer) Insert(pos Position, text string) (Position, error) {
	if !pos.IsValid() {
		return Position{}, fmt.Errorf("insert at %s: %w", pos, ErrInvalidPosition)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	pos = b.resolveLocked(pos)
	return b.editLocked(pos, pos, normalizeLineEndings(text), true), nil
}

// Delete removes the text between two positions, in either order.
func (b *Buffer) Delete(from, to Position) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("delete %s-%s: %w", from, to, ErrInvalidPosition)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	r := NewRange(b.resolveLocked(from), b.resolveLocked(to))
	b.editLocked(r.Start, r.End, "", true)
	return nil
}

// Replace replaces the text between two positions and returns the position
// after the new text.
func (b *Buffer) Replace(from, to Position, text string) (Position, error) {
	if !from.IsValid() || !to.IsValid() {
		return Position{}, fmt.Errorf("replace %s-%s: %w", from, to, ErrInvalidPosition)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	r := NewRange(b.resolveLocked(from), b.resolveLocked(to))
	return b.editLocked(r.Start, r.End, normalizeLineEndings(text), true), nil
}

// ApplyEdits applies multiple edits under one lock.
// Edits must be in reverse order (latest range first) and must not overlap.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}

	for i := 1; i < len(edits); i++ {
		if edits[i].Range.End.After(edits[i-1].Range.Start) {
			return ErrEditsOverlap
		}
	}
	for _, e := range edits {
		if !e.Range.Start.IsValid() || !e.Range.IsValid() {
			return fmt.Errorf("edit %s: %w", e, ErrInvalidPosition)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range edits {
		if e.IsNoOp() {
			continue
		}
		r := NewRange(b.resolveLocked(e.Range.Start), b.resolveLocked(e.Range.End))
		b.editLocked(r.Start, r.End, normalizeLineEndings(e.NewText), true)
	}
	return nil
}

// SetText replaces the whole content and clears undo history and marks.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = strings.Split(normalizeLineEndings(s), "\n")
	b.marks = make(map[string]*mark)
	b.revision++
	if b.history != nil {
		b.history.Clear()
	}
}

// Undo

// BeginGroup starts an undo group; edits until the matching EndGroup undo
// as one unit. Groups nest.
func (b *Buffer) BeginGroup(name string) {
	if b.history != nil {
		b.history.BeginGroup(name)
	}
}

// EndGroup closes the current undo group.
func (b *Buffer) EndGroup() {
	if b.history != nil {
		b.history.EndGroup()
	}
}

// Undo reverts the most recent undo unit and returns the position where
// its first edit started.
func (b *Buffer) Undo() (Position, error) {
	if b.history == nil {
		return Position{}, ErrUndoDisabled
	}
	e, err := b.history.Undo(b)
	if err != nil {
		return Position{}, err
	}
	return entryStart(e), nil
}

// Redo re-applies the most recently undone unit.
func (b *Buffer) Redo() (Position, error) {
	if b.history == nil {
		return Position{}, ErrUndoDisabled
	}
	e, err := b.history.Redo(b)
	if err != nil {
		return Position{}, err
	}
	return entryStart(e), nil
}

// CanUndo returns true if there is something to undo.
func (b *Buffer) CanUndo() bool {
	return b.history != nil && b.history.CanUndo()
}

// CanRedo returns true if there is something to redo.
func (b *Buffer) CanRedo() bool {
	return b.history != nil && b.history.CanRedo()
}

// ApplyOperation applies a recorded operation without recording it again.
// It implements history.Applier.
func (b *Buffer) ApplyOperation(op history.Operation) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	from := Position{Row: op.Row, Col: op.Col}
	if from.Row < 1 || from.Row > len(b.lines) {
		return fmt.Errorf("apply %s: %w", op, ErrRowOutOfRange)
	}
	to := advancePosition(from, op.OldText)
	if b.resolveLocked(from) != from || b.resolveLocked(to) != to || b.getLocked(from, to) != op.OldText {
		return fmt.Errorf("apply %s: %w", op, ErrInvalidPosition)
	}

	b.editLocked(from, to, op.NewText, false)
	return nil
}

func entryStart(e history.Entry) Position {
	if len(e.Operations) == 0 {
		return Position{Row: 1}
	}
	op := e.Operations[0]
	return Position{Row: op.Row, Col: op.Col}
}

// Internal helpers (caller holds the lock)

func (b *Buffer) lineLocked(row int) string {
	if row < 1 || row > len(b.lines) {
		return ""
	}
	return b.lines[row-1]
}

func (b *Buffer) endLocked() Position {
	last := len(b.lines)
	return Position{Row: last, Col: utf8.RuneCountInString(b.lines[last-1])}
}

func (b *Buffer) resolveLocked(pos Position) Position {
	if pos.Row < 1 {
		return Position{Row: 1}
	}
	if pos.Row > len(b.lines) {
		return b.endLocked()
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := utf8.RuneCountInString(b.lines[pos.Row-1]); pos.Col > n {
		pos.Col = n
	}
	return pos
}

// getLocked returns the text in [from, to); both must be resolved and ordered.
func (b *Buffer) getLocked(from, to Position) string {
	if from.Row == to.Row {
		runes := []rune(b.lines[from.Row-1])
		return string(runes[from.Col:to.Col])
	}

	var sb strings.Builder
	sb.WriteString(string([]rune(b.lines[from.Row-1])[from.Col:]))
	for row := from.Row + 1; row < to.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[row-1])
	}
	sb.WriteByte('\n')
	sb.WriteString(string([]rune(b.lines[to.Row-1])[:to.Col]))
	return sb.String()
}

// editLocked replaces [from, to) with text; both must be resolved and ordered.
func (b *Buffer) editLocked(from, to Position, text string, record bool) Position {
	old := b.getLocked(from, to)
	if old == "" && text == "" {
		return from
	}

	head := string([]rune(b.lines[from.Row-1])[:from.Col])
	tail := string([]rune(b.lines[to.Row-1])[to.Col:])

	parts := strings.Split(text, "\n")
	parts[0] = head + parts[0]
	last := len(parts) - 1
	end := Position{Row: from.Row + last, Col: utf8.RuneCountInString(parts[last])}
	parts[last] += tail

	lines := make([]string, 0, len(b.lines)-(to.Row-from.Row)+last)
	lines = append(lines, b.lines[:from.Row-1]...)
	lines = append(lines, parts...)
	lines = append(lines, b.lines[to.Row:]...)
	b.lines = lines
	b.revision++

	b.transformMarksLocked(from, to, end)

	if record && b.history != nil {
		b.history.Push(history.NewOperation(from.Row, from.Col, old, text))
	}
	return end
}

// advancePosition returns the position reached after writing text at pos.
func advancePosition(pos Position, text string) Position {
	n := strings.Count(text, "\n")
	if n == 0 {
		return Position{Row: pos.Row, Col: pos.Col + utf8.RuneCountInString(text)}
	}
	lastLine := text[strings.LastIndexByte(text, '\n')+1:]
	return Position{Row: pos.Row + n, Col: utf8.RuneCountInString(lastLine)}
}
