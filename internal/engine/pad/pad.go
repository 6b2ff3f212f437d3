package pad

import (
	"fmt"
	"strings"

	"github.com/dshills/boxedit/internal/engine/bounds"
	"github.com/dshills/boxedit/internal/engine/buffer"
)

// Buffer is the subset of buffer operations padding needs.
type Buffer interface {
	LineCount() int
	Line(row int) string
	LineLen(row int) int
	End() buffer.Position
	Insert(pos buffer.Position, text string) (buffer.Position, error)
	Delete(from, to buffer.Position) error
	Replace(from, to buffer.Position, text string) (buffer.Position, error)
}

// CaretKeeper exposes the host caret so Retract can put it back after
// each row edit.
type CaretKeeper interface {
	Caret() buffer.Position
	SetCaret(pos buffer.Position)
}

const inlineWhitespace = " \t"

// Ledger records what Materialize added so Retract can take back exactly
// that. The zero value is ready to use. One Ledger follows one rectangle
// through a gesture; rows are keyed by number, so it assumes padding is
// retracted before rows above it are inserted or removed.
type Ledger struct {
	// keep maps each padded row to the length Retract may not trim below:
	// the row's original length when it ended in whitespace, else 0.
	keep map[int]int
	// base is the line count before Materialize appended rows, or 0.
	base int
}

// Padded reports whether Materialize padded row and has not retracted it.
func (l *Ledger) Padded(row int) bool {
	_, ok := l.keep[row]
	return ok
}

// Reset forgets all recorded padding.
func (l *Ledger) Reset() {
	l.keep = nil
	l.base = 0
}

func (l *Ledger) record(row int, text string) {
	if l == nil {
		return
	}
	if l.keep == nil {
		l.keep = make(map[int]int)
	}
	if _, ok := l.keep[row]; ok {
		return
	}
	n := 0
	if strings.TrimRight(text, inlineWhitespace) != text {
		n = len([]rune(text))
	}
	l.keep[row] = n
}

// Materialize makes every row in [BR, ER] exist and reach at least EC
// characters. It reports whether the buffer changed. Calling it again with
// the same bounds changes nothing. It keeps no record; Retract then falls
// back to the EC rule.
func Materialize(buf Buffer, b bounds.Bounds) (bool, error) {
	return (*Ledger)(nil).Materialize(buf, b)
}

// Retract removes whitespace from the rows b covered using the EC rule:
// whitespace-only rows are emptied, trailing whitespace at or after EC is
// trimmed, and empty rows at the end of the buffer down to BR are removed.
// caret may be nil.
func Retract(buf Buffer, caret CaretKeeper, b bounds.Bounds) error {
	return (*Ledger)(nil).Retract(buf, caret, b)
}

// Materialize works like the package function and also records every row
// it pads or appends. A nil Ledger records nothing.
func (l *Ledger) Materialize(buf Buffer, b bounds.Bounds) (bool, error) {
	if b.IsZero() {
		return false, nil
	}

	changed := false
	if n := buf.LineCount(); b.ER > n {
		if l != nil && l.base == 0 {
			l.base = n
		}
		if _, err := buf.Insert(buf.End(), strings.Repeat("\n", b.ER-n)); err != nil {
			return changed, fmt.Errorf("materialize rows: %w", err)
		}
		changed = true
	}

	for row := b.BR; row <= b.ER; row++ {
		n := buf.LineLen(row)
		if n >= b.EC {
			continue
		}
		l.record(row, buf.Line(row))
		if _, err := buf.Insert(buffer.Pos(row, n), strings.Repeat(" ", b.EC-n)); err != nil {
			return changed, fmt.Errorf("materialize row %d: %w", row, err)
		}
		changed = true
	}
	return changed, nil
}

// Retract takes back the padding recorded for the rows b covers: each
// padded row loses its trailing whitespace down to its original length,
// and only rows Materialize appended are removed from the end. Rows with
// no record follow the EC rule of the package function. caret may be nil.
func (l *Ledger) Retract(buf Buffer, caret CaretKeeper, b bounds.Bounds) error {
	if b.IsZero() {
		return nil
	}

	var saved buffer.Position
	restore := func() {
		if caret != nil {
			caret.SetCaret(saved)
		}
	}
	if caret != nil {
		saved = caret.Caret()
	}

	last := min(b.ER, buf.LineCount())
	for row := b.BR; row <= last; row++ {
		var err error
		if keep, ok := l.padded(row); ok {
			err = trimRow(buf, row, keep)
			delete(l.keep, row)
		} else {
			err = retractRow(buf, row, b.EC)
		}
		if err != nil {
			return err
		}
		restore()
	}

	if last != buf.LineCount() {
		return nil
	}

	// Padding only ever adds rows at the end of the buffer.
	floor := max(1, b.BR-1)
	if l != nil {
		if l.base == 0 {
			return nil
		}
		floor = max(floor, l.base)
	}
	for row := last; row > floor && buf.LineLen(row) == 0; row-- {
		prev := row - 1
		if err := buf.Delete(buffer.Pos(prev, buf.LineLen(prev)), buffer.Pos(row, 0)); err != nil {
			return fmt.Errorf("retract row %d: %w", row, err)
		}
		if l != nil {
			delete(l.keep, row)
		}
		restore()
	}
	if l != nil && buf.LineCount() <= l.base {
		l.base = 0
	}
	return nil
}

func (l *Ledger) padded(row int) (int, bool) {
	if l == nil {
		return 0, false
	}
	keep, ok := l.keep[row]
	return keep, ok
}

// trimRow drops trailing whitespace from row without going below keep.
func trimRow(buf Buffer, row, keep int) error {
	runes := []rune(buf.Line(row))
	end := max(len([]rune(strings.TrimRight(string(runes), inlineWhitespace))), min(keep, len(runes)))
	if end == len(runes) {
		return nil
	}
	if err := buf.Delete(buffer.Pos(row, end), buffer.Pos(row, len(runes))); err != nil {
		return fmt.Errorf("retract row %d: %w", row, err)
	}
	return nil
}

func retractRow(buf Buffer, row, from int) error {
	text := buf.Line(row)
	runes := []rune(text)

	if strings.Trim(text, inlineWhitespace) == "" {
		if text == "" {
			return nil
		}
		if err := buf.Delete(buffer.Pos(row, 0), buffer.Pos(row, len(runes))); err != nil {
			return fmt.Errorf("retract row %d: %w", row, err)
		}
		return nil
	}

	if len(runes) <= from {
		return nil
	}
	suffix := string(runes[from:])
	trimmed := strings.TrimRight(suffix, inlineWhitespace)
	if trimmed == suffix {
		return nil
	}
	if _, err := buf.Replace(buffer.Pos(row, from), buffer.Pos(row, len(runes)), trimmed); err != nil {
		return fmt.Errorf("retract row %d: %w", row, err)
	}
	return nil
}
