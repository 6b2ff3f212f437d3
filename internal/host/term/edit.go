package term

import (
	"strings"
	"unicode"

	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/highlight"
	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/input/mouse"
)

// defaultKey gives ev the ordinary editing behavior the editor left to the
// host.
func (h *Host) defaultKey(ev key.Event) {
	mods := ev.Modifiers.Keys()
	shift := mods == key.ModShift

	// Keys the editor leaves alone drop a stale rectangle first.
	if _, live := h.ed.Bounds(); live && ev.Key != key.KeyRune {
		h.ed.Reset()
	}

	switch {
	case ev.IsCtrlRune('c'):
		h.copySelection(false)
		return
	case ev.IsCtrlRune('x'):
		h.copySelection(true)
		return
	case ev.IsCtrlRune('v'):
		h.paste()
		return
	case ev.IsCtrlRune('a'):
		h.selAnchor = buffer.Pos(1, 0)
		h.caret = h.buf.End()
		h.setSelection(h.selAnchor, h.caret)
		return
	}

	c := h.buf.Resolve(h.caret)
	switch ev.Key {
	case key.KeyEscape:
		h.hl.Clear(highlight.TagSelection)
	case key.KeyEnter:
		h.insert("\n")
	case key.KeyTab:
		h.insert("\t")
	case key.KeyBackspace:
		h.backspace()
	case key.KeyDelete:
		h.deleteForward()
	case key.KeyHome:
		h.moveTo(buffer.Pos(c.Row, 0), shift)
	case key.KeyEnd:
		h.moveTo(buffer.Pos(c.Row, h.buf.LineLen(c.Row)), shift)
	case key.KeyPageUp:
		h.moveTo(h.buf.Resolve(buffer.Pos(max(1, c.Row-h.textRows()), c.Col)), shift)
	case key.KeyPageDown:
		h.moveTo(h.buf.Resolve(buffer.Pos(c.Row+h.textRows(), c.Col)), shift)
	case key.KeyUp:
		if c.Row > 1 {
			h.moveTo(h.buf.Resolve(buffer.Pos(c.Row-1, c.Col)), shift)
		}
	case key.KeyDown:
		if c.Row < h.buf.LineCount() {
			h.moveTo(h.buf.Resolve(buffer.Pos(c.Row+1, c.Col)), shift)
		}
	case key.KeyLeft:
		switch {
		case c.Col > 0:
			h.moveTo(buffer.Pos(c.Row, c.Col-1), shift)
		case c.Row > 1:
			h.moveTo(buffer.Pos(c.Row-1, h.buf.LineLen(c.Row-1)), shift)
		}
	case key.KeyRight:
		switch {
		case c.Col < h.buf.LineLen(c.Row):
			h.moveTo(buffer.Pos(c.Row, c.Col+1), shift)
		case c.Row < h.buf.LineCount():
			h.moveTo(buffer.Pos(c.Row+1, 0), shift)
		}
	case key.KeyRune:
		if unicode.IsPrint(ev.Rune) && mods&(key.ModCtrl|key.ModAlt|key.ModMeta) == 0 {
			h.insert(string(ev.Rune))
		}
	}
}

// pasteKey inserts bracketed-paste input literally.
func (h *Host) pasteKey(ev key.Event) {
	switch ev.Key {
	case key.KeyEnter:
		h.insert("\n")
	case key.KeyTab:
		h.insert("\t")
	case key.KeyRune:
		h.insert(string(ev.Rune))
	}
}

// defaultPointer places the caret and drags out a linear selection.
func (h *Host) defaultPointer(ev mouse.Event) {
	pos := h.CellAt(ev.Position.X, ev.Position.Y)
	switch {
	case ev.IsPrimaryPress():
		h.hl.Clear(highlight.TagSelection)
		h.caret = pos
		h.selAnchor = pos
		h.selecting = true
	case ev.Action == mouse.ActionDrag && h.selecting:
		h.caret = pos
		h.setSelection(h.selAnchor, pos)
	case ev.IsPrimaryRelease():
		h.selecting = false
	}
}

func (h *Host) moveTo(pos buffer.Position, extend bool) {
	if !extend {
		h.hl.Clear(highlight.TagSelection)
		h.caret = pos
		return
	}
	if !h.hl.Has(highlight.TagSelection) {
		h.selAnchor = h.buf.Resolve(h.caret)
	}
	h.caret = pos
	h.setSelection(h.selAnchor, pos)
}

func (h *Host) setSelection(a, b buffer.Position) {
	if a == b {
		h.hl.Clear(highlight.TagSelection)
		return
	}
	h.hl.Set(highlight.TagSelection, buffer.NewRange(a, b))
}

func (h *Host) insert(text string) {
	h.deleteSelection()
	end, err := h.buf.Insert(h.buf.Resolve(h.caret), text)
	if err != nil {
		h.log.WithError(err).Debug("insert failed")
		return
	}
	h.caret = end
}

// deleteSelection removes the selected text, last range first, and
// reports whether there was any.
func (h *Host) deleteSelection() bool {
	ranges := h.hl.Ranges(highlight.TagSelection)
	if len(ranges) == 0 {
		return false
	}
	edits := make([]buffer.Edit, 0, len(ranges))
	for i := len(ranges) - 1; i >= 0; i-- {
		edits = append(edits, buffer.NewDelete(ranges[i]))
	}
	if err := h.buf.ApplyEdits(edits); err != nil {
		h.log.WithError(err).Debug("delete selection failed")
	}
	h.caret = ranges[0].Start
	h.hl.Clear(highlight.TagSelection)
	return true
}

func (h *Host) backspace() {
	if h.deleteSelection() {
		return
	}
	c := h.buf.Resolve(h.caret)
	var from buffer.Position
	switch {
	case c.Col > 0:
		from = buffer.Pos(c.Row, c.Col-1)
	case c.Row > 1:
		from = buffer.Pos(c.Row-1, h.buf.LineLen(c.Row-1))
	default:
		return
	}
	if err := h.buf.Delete(from, c); err != nil {
		h.log.WithError(err).Debug("backspace failed")
		return
	}
	h.caret = from
}

func (h *Host) deleteForward() {
	if h.deleteSelection() {
		return
	}
	c := h.buf.Resolve(h.caret)
	var to buffer.Position
	switch {
	case c.Col < h.buf.LineLen(c.Row):
		to = buffer.Pos(c.Row, c.Col+1)
	case c.Row < h.buf.LineCount():
		to = buffer.Pos(c.Row+1, 0)
	default:
		return
	}
	if err := h.buf.Delete(c, to); err != nil {
		h.log.WithError(err).Debug("delete failed")
	}
	h.caret = c
}

// copySelection writes the selected text to the clipboard, one line per
// range, and deletes it when cut is set.
func (h *Host) copySelection(cut bool) {
	ranges := h.hl.Ranges(highlight.TagSelection)
	if len(ranges) == 0 {
		return
	}
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, h.buf.Get(r.Start, r.End))
	}
	if err := h.clip.WriteText(strings.Join(parts, "\n")); err != nil {
		h.log.WithError(err).Warn("clipboard write failed")
		return
	}
	if cut {
		h.deleteSelection()
	}
}

func (h *Host) paste() {
	text, err := h.clip.ReadText()
	if err != nil {
		h.log.WithError(err).Debug("paste skipped")
		return
	}
	h.insert(text)
}
