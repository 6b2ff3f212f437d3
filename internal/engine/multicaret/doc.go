// Package multicaret provides per-row iteration for typing into a box
// selection, the zero-width caret markers drawn on every selected row, and
// the blink timer that toggles them.
//
// One marker per row sits at the edit column. The marker on the row the
// drag is heading towards (the bottom row for downward selections, the top
// row otherwise) is primary; the rest are shadows drawn dimmed.
//
// The Blinker never touches the host directly. It runs a draw callback
// through a Scheduler, and hosts supply a Scheduler whose callbacks run on
// their event loop:
//
//	b := multicaret.NewBlinker(sched, 500*time.Millisecond, 500*time.Millisecond, view.DrawCarets)
//	b.Start(multicaret.Markers(rect, col))
//	...
//	b.Stop()
package multicaret
