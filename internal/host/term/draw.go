package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/boxedit/internal/boxselect"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/highlight"
)

// Draw renders the text, highlights, carets and status line.
func (h *Host) Draw() {
	h.screen.Clear()
	width, height := h.screen.Size()
	rows := h.textRows()

	for y := 0; y < rows; y++ {
		row := h.top + y
		if row > h.buf.LineCount() {
			break
		}
		h.drawLine(row, y, width)
	}
	for _, m := range h.carets {
		h.drawCaret(m.Pos, rows)
	}
	h.drawStatus(height-1, width)

	y := h.caret.Row - h.top
	if len(h.carets) == 0 && y >= 0 && y < rows {
		h.screen.ShowCursor(h.buf.DisplayColumn(h.caret), y)
	} else {
		h.screen.HideCursor()
	}
	h.screen.Show()
}

func (h *Host) drawLine(row, y, width int) {
	tab := h.buf.TabWidth()
	x := 0
	for col, r := range []rune(h.buf.Line(row)) {
		if x >= width {
			return
		}
		style := h.styleAt(buffer.Pos(row, col))
		if r == '\t' {
			for next := (x/tab + 1) * tab; x < next; x++ {
				h.screen.SetContent(x, y, ' ', nil, style)
			}
			continue
		}
		h.screen.SetContent(x, y, r, nil, style)
		x += cellWidth(r)
	}
}

// drawCaret paints one multi-caret marker over the cell it sits on.
func (h *Host) drawCaret(pos buffer.Position, rows int) {
	y := pos.Row - h.top
	if y < 0 || y >= rows {
		return
	}

	r := ' '
	if line := []rune(h.buf.Line(pos.Row)); pos.Col < len(line) && line[pos.Col] != '\t' {
		r = line[pos.Col]
	}
	h.screen.SetContent(h.buf.DisplayColumn(pos), y, r, nil, h.theme.Caret)
}

func (h *Host) drawStatus(y, width int) {
	if y < 0 {
		return
	}

	text := fmt.Sprintf(" %s", h.ed.State())
	if b, ok := h.ed.Bounds(); ok {
		text += " " + b.String()
	}
	if h.pointer == boxselect.PointerMove {
		text += " [move]"
	}
	text += fmt.Sprintf("  %d:%d  %s: box  Ctrl+Q: quit", h.caret.Row, h.caret.Col+1, h.chord)

	text = runewidth.FillRight(runewidth.Truncate(text, width, "…"), width)
	x := 0
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, h.theme.Status)
		x += cellWidth(r)
	}
}

func (h *Host) styleAt(pos buffer.Position) tcell.Style {
	style := h.theme.Text
	for _, tag := range h.hl.TagsAt(pos) {
		switch tag {
		case highlight.TagSelection:
			return h.theme.Selection
		case highlight.TagBox:
			style = h.theme.Box
		}
	}
	return style
}

// textRows is the number of screen rows showing text.
func (h *Host) textRows() int {
	_, height := h.screen.Size()
	return max(1, height-1)
}

func (h *Host) scroll(delta int) {
	h.top = min(max(1, h.top+delta), max(1, h.buf.LineCount()))
}

// scrollToCaret brings the caret row on screen.
func (h *Host) scrollToCaret() {
	rows := h.textRows()
	switch row := h.caret.Row; {
	case row < h.top:
		h.top = max(1, row)
	case row >= h.top+rows:
		h.top = row - rows + 1
	}
}

// cellWidth is the terminal width of r, at least one cell.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
