// Package script runs Lua scripts against a headless box-selection editor.
//
// A Session owns an in-memory buffer, view, highlight store, clipboard and
// a manual clock, and exposes them to Lua as the global table "box":
//
//	box.text("abc\nde\nfghi")
//	box.caret(1, 1)
//	box.key("Shift+Alt")        -- arm
//	box.key("Shift+Alt+Down")   -- extend
//	box.release("Alt")          -- commit
//	box.type("X")
//	box.expect("aXbc\ndXe \nfXghi")
//
// Pointer calls (box.down, box.move, box.hover, box.up) take a row and a
// column. box.wait(ms) advances the clock that drives caret blinking.
// Scripts get the base, table, string and math libraries only.
package script
