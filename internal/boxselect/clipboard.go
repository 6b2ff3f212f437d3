package boxselect

import (
	"strings"

	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/highlight"
)

// Copy writes the selected text, one range per line, to the clipboard.
// The previous clipboard content is backed up first. It reports whether
// anything was copied.
func (e *Editor) Copy() bool {
	text := e.rangeText(e.hl.Ranges(highlight.TagSelection))
	if text == "" {
		return false
	}
	e.writeClipboard(text)
	return true
}

// Cut deletes every selected range and clears the selection highlight. It
// reports whether any text was removed.
func (e *Editor) Cut() bool {
	ranges := e.hl.Ranges(highlight.TagSelection)
	e.hl.Clear(highlight.TagSelection)
	return e.cutRanges(ranges)
}

// Paste inserts the clipboard text column-aligned at the caret. It reports
// whether anything was pasted; an empty or unreadable clipboard pastes
// nothing.
func (e *Editor) Paste() bool {
	text, err := e.clip.ReadText()
	if err != nil || text == "" {
		e.log.WithError(err).Debug("nothing to paste")
		return false
	}
	pos := e.view.Caret()
	e.pasteText(pos, text)
	e.view.SetCaret(pos)
	return true
}

func (e *Editor) handleCopy() Result {
	e.boxCopy = e.mode == ModeBox && e.state.live()
	if !e.boxCopy {
		return unhandled
	}
	e.Copy()
	return handled
}

func (e *Editor) handleCut() Result {
	e.boxCopy = e.mode == ModeBox && e.state.live()
	if !e.boxCopy {
		return unhandled
	}
	e.Copy()
	e.Cut()
	e.Reset()
	return handled
}

func (e *Editor) handlePaste() Result {
	if !e.boxCopy {
		return unhandled
	}

	text, err := e.clip.ReadText()
	if err != nil || text == "" {
		e.log.WithError(err).Debug("nothing to paste")
		return handled
	}

	e.beginGroup()
	e.Cut()
	pos := e.view.Caret()
	if !e.bounds.IsZero() {
		pos = e.bounds.Start()
	}
	e.pasteText(pos, text)
	e.view.SetCaret(pos)
	e.Reset()
	return handled
}

// rangeText joins the text of ranges with newlines.
func (e *Editor) rangeText(ranges []buffer.Range) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, e.buf.Get(r.Start, r.End))
	}
	return strings.Join(parts, "\n")
}

// cutRanges deletes ranges, last first so earlier ranges stay valid.
func (e *Editor) cutRanges(ranges []buffer.Range) bool {
	removed := false
	for i := len(ranges) - 1; i >= 0; i-- {
		r := ranges[i]
		if r.IsEmpty() {
			continue
		}
		if err := e.buf.Delete(r.Start, r.End); err != nil {
			e.log.WithError(err).WithField("range", r).Warn("cut failed")
			continue
		}
		removed = true
	}
	return removed
}

// pasteText inserts one line of text per row from pos downwards. Missing
// rows are created and rows shorter than the caret's display column are
// padded with spaces, so tabs and wide runes keep the block aligned.
func (e *Editor) pasteText(pos buffer.Position, text string) {
	x := e.buf.DisplayColumn(pos)

	for i, line := range strings.Split(text, "\n") {
		row := pos.Row + i
		if missing := row - e.buf.LineCount(); missing > 0 {
			if _, err := e.buf.Insert(e.buf.End(), strings.Repeat("\n", missing)); err != nil {
				e.log.WithError(err).Warn("paste rows failed")
				return
			}
		}

		col := pos.Col
		if i > 0 {
			col = e.buf.ColumnAtDisplay(row, x)
		}
		if n := e.buf.LineLen(row); col > n {
			if gap := x - e.buf.DisplayWidth(row); gap > 0 {
				line = strings.Repeat(" ", gap) + line
			}
			col = n
		}
		if line == "" {
			continue
		}
		if _, err := e.buf.Insert(buffer.Pos(row, col), line); err != nil {
			e.log.WithError(err).WithField("row", row).Warn("paste failed")
		}
	}
}

// writeClipboard backs up the clipboard and replaces it with text. An
// unreadable clipboard backs up as empty.
func (e *Editor) writeClipboard(text string) {
	prev, err := e.clip.ReadText()
	if err != nil {
		prev = ""
	}
	e.backup, e.hasBackup = prev, true

	if err := e.clip.WriteText(text); err != nil {
		e.log.WithError(err).Warn("clipboard write failed")
	}
}

// restoreClipboard puts back the content saved by the last copy.
func (e *Editor) restoreClipboard() {
	if !e.hasBackup {
		return
	}
	prev := e.backup
	e.backup, e.hasBackup = "", false
	if prev == "" {
		return
	}
	if err := e.clip.WriteText(prev); err != nil {
		e.log.WithError(err).Warn("clipboard restore failed")
	}
}
