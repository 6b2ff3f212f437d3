// Package key models keyboard input: keys, modifier sets, press and
// release events, and the two-modifier Chord that arms box selection.
//
// Parse and Event.String share one notation: modifier names joined by
// "+" ahead of the key, as in "Ctrl+c", "Shift+Alt+Down" or "Space".
// Modifier names are case-insensitive and accept the usual platform
// aliases ("Option" for Alt, "Cmd" for Meta).
package key
