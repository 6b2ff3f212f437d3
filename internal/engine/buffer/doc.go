// Package buffer provides a thread-safe, line-oriented text buffer addressed
// by row/column positions. It is the text model the box-selection engine
// edits.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - 1-indexed rows and 0-indexed rune columns, with virtual positions
//     that resolve (clamp) to existing text
//   - Named marks with left/right gravity, transformed on every edit
//   - Display columns computed with go-runewidth and tab stops
//   - A bounded undo history with gesture groups
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("abc\nde")
//
//	// Insert text
//	buf.Insert(buffer.Pos(2, 2), "f") // "abc\ndef"
//
//	// Group edits into one undo unit
//	buf.BeginGroup("type")
//	buf.Insert(buffer.Pos(1, 1), "X")
//	buf.Insert(buffer.Pos(2, 1), "X")
//	buf.EndGroup()
//	buf.Undo() // both inserts reverted
//
// Virtual positions:
//
// A Position may name a row or column that does not exist yet. Read methods
// treat missing text as empty; edit methods resolve the position first.
// Callers that need the position to exist pad the buffer explicitly.
package buffer
