// Package boxselect implements rectangular (box) selection for a line and
// column addressed text buffer.
//
// An Editor is driven by raw key and pointer events from a host widget. A
// configurable modifier chord (Shift+Alt by default) arms a gesture; mouse
// drags or arrow presses while the chord is held stretch a rectangle from
// the caret recorded when the chord engaged. Rows and columns the
// rectangle covers are materialized with synthetic whitespace, which is
// retracted again whenever the rectangle changes or is discarded.
//
// Releasing the chord commits the rectangle to the standard selection
// highlight. A committed rectangle can be typed into (one caret per row),
// backspaced, copied, cut, pasted column-aligned, nudged with Shift+Arrow
// or grabbed with the pointer and dropped elsewhere.
//
// # Lifecycle
//
//	Idle --chord--> Armed --drag/arrow--> Dragging --release--> Committed
//	Committed --rune/backspace/Enter--> Typing
//	Committed --pointer-down inside--> grab (held, then moving) --release--> Committed
//
// Escape, a click outside the selection, or an unmodified vertical arrow
// return to Idle.
//
// # Collaborators
//
// The host supplies a Buffer (satisfied by *buffer.Buffer), a View for the
// caret, cell metrics and caret drawing, a Highlighter (satisfied by
// *highlight.Store) and a Clipboard. Every HandleKey and HandlePointer call
// returns a Result telling the host whether to suppress its own default
// handling of the event.
//
// # Undo
//
// Every edit from arming a gesture until the rectangle is discarded is
// recorded as one undo group, so Ctrl+Z reverts a whole gesture.
package boxselect
