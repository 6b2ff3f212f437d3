package buffer

import "github.com/mattn/go-runewidth"

// DisplayColumn returns the cell offset of pos on its row, with tabs
// expanded to the buffer's tab stops and wide runes counted by their
// terminal width. Virtual columns past the end of the row count one cell each.
func (b *Buffer) DisplayColumn(pos Position) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	runes := []rune(b.lineLocked(pos.Row))
	x := 0
	for i := 0; i < pos.Col; i++ {
		if i >= len(runes) {
			x += pos.Col - i
			break
		}
		x = b.advance(x, runes[i])
	}
	return x
}

// ColumnAtDisplay returns the rune column on row whose cell span covers
// display offset x. Offsets past the end of the row map to virtual columns.
func (b *Buffer) ColumnAtDisplay(row, x int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if x <= 0 {
		return 0
	}

	runes := []rune(b.lineLocked(row))
	cur := 0
	for i, r := range runes {
		next := b.advance(cur, r)
		if x < next {
			return i
		}
		cur = next
	}
	return len(runes) + x - cur
}

// DisplayWidth returns the cell width of a whole row.
func (b *Buffer) DisplayWidth(row int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	x := 0
	for _, r := range b.lineLocked(row) {
		x = b.advance(x, r)
	}
	return x
}

func (b *Buffer) advance(x int, r rune) int {
	if r == '\t' {
		return (x/b.tabWidth + 1) * b.tabWidth
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	return x + w
}
