// Package term hosts a box-selection editor in a terminal using tcell.
//
// The Host implements boxselect.View over a tcell.Screen: it draws the
// buffer, the selection and box highlights, the blinking multi-caret and a
// status line, and it turns tcell key and mouse events into the editor's
// input events. Events the editor leaves unhandled get ordinary editing
// behavior (typing, arrows, linear selection, copy and paste, undo).
//
// Terminals report modifier keys only together with another key or a
// mouse event, so the host synthesizes the chord press when an event first
// carries both chord modifiers and the release when one arrives without
// them, or when no chord event has been seen for the release delay.
package term
