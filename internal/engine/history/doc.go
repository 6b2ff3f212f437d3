// Package history provides undo/redo bookkeeping for the text buffer.
//
// Every buffer mutation is recorded as an Operation: the row/column where it
// happened, the text it removed and the text it inserted. Operations pushed
// between BeginGroup and EndGroup form a single undo unit, so a whole box
// selection gesture (padding, typing on every row, cleanup) undoes with one
// keystroke:
//
//	h := history.New(32)
//	h.BeginGroup("type")
//	h.Push(history.NewOperation(1, 4, "", "X"))
//	h.Push(history.NewOperation(2, 4, "", "X"))
//	h.EndGroup()
//
//	h.Undo(applier) // both insertions reverted
//
// History does not know about the buffer. Undo and Redo hand inverted
// operations to an Applier, which is expected to apply them without
// recording them again.
package history
