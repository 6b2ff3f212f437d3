// Package mouse provides pointer input types for the box-selection engine.
//
// Event carries a pixel position relative to the text area, the button that
// changed, the set of buttons still held, and the keyboard modifiers:
//
//	event := mouse.Event{
//	    Position:  mouse.Position{X: 100, Y: 50},
//	    Button:    mouse.ButtonLeft,
//	    Buttons:   mouse.MaskLeft,
//	    Action:    mouse.ActionPress,
//	}
//
// Hosts that only report button masks (terminals) feed raw samples through
// a Tracker, which diffs the mask and produces press, drag, move and
// release events:
//
//	tracker := mouse.NewTracker()
//	for _, ev := range tracker.Update(pos, mask, mods) {
//	    editor.HandlePointer(ev)
//	}
package mouse
