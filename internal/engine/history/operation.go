package history

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Operation represents a single undoable edit.
// Row is 1-based and Col is a 0-based rune column, matching buffer positions.
type Operation struct {
	Row     int
	Col     int
	OldText string // Text that was removed
	NewText string // Text that was inserted

	Timestamp time.Time
}

// NewOperation creates a new operation.
func NewOperation(row, col int, oldText, newText string) Operation {
	return Operation{
		Row:       row,
		Col:       col,
		OldText:   oldText,
		NewText:   newText,
		Timestamp: time.Now(),
	}
}

// IsInsert returns true if this operation is a pure insertion.
func (op Operation) IsInsert() bool {
	return op.OldText == "" && op.NewText != ""
}

// IsDelete returns true if this operation is a pure deletion.
func (op Operation) IsDelete() bool {
	return op.OldText != "" && op.NewText == ""
}

// IsNoOp returns true if the operation changed nothing.
func (op Operation) IsNoOp() bool {
	return op.OldText == op.NewText
}

// Invert returns the operation that undoes op.
func (op Operation) Invert() Operation {
	return Operation{
		Row:       op.Row,
		Col:       op.Col,
		OldText:   op.NewText,
		NewText:   op.OldText,
		Timestamp: op.Timestamp,
	}
}

// String returns a human-readable description.
func (op Operation) String() string {
	switch {
	case op.IsInsert():
		return fmt.Sprintf("Insert(%d.%d, %d chars)", op.Row, op.Col, utf8.RuneCountInString(op.NewText))
	case op.IsDelete():
		return fmt.Sprintf("Delete(%d.%d, %d chars)", op.Row, op.Col, utf8.RuneCountInString(op.OldText))
	default:
		return fmt.Sprintf("Replace(%d.%d)", op.Row, op.Col)
	}
}

// Entry is one undo unit: a named list of operations in the order applied.
type Entry struct {
	Name       string
	Operations []Operation
	Timestamp  time.Time
}

// Applier applies operations produced by Undo and Redo.
type Applier interface {
	ApplyOperation(op Operation) error
}
