package buffer

// Gravity decides which side of an insertion at a mark's exact position
// the mark ends up on.
type Gravity uint8

const (
	// GravityRight moves the mark to the end of text inserted at it.
	GravityRight Gravity = iota
	// GravityLeft keeps the mark before text inserted at it.
	GravityLeft
)

// String returns the gravity name.
func (g Gravity) String() string {
	if g == GravityLeft {
		return "left"
	}
	return "right"
}

type mark struct {
	pos     Position
	gravity Gravity
}

// SetMark places a named mark at pos (resolved to an existing position).
// An existing mark with the same name is replaced.
func (b *Buffer) SetMark(name string, pos Position, gravity Gravity) Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	pos = b.resolveLocked(pos)
	b.marks[name] = &mark{pos: pos, gravity: gravity}
	return pos
}

// Mark returns the current position of a named mark.
func (b *Buffer) Mark(name string) (Position, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	m, ok := b.marks[name]
	if !ok {
		return Position{}, false
	}
	return m.pos, true
}

// DeleteMark removes a named mark.
func (b *Buffer) DeleteMark(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.marks, name)
}

// MarkNames returns the names of all marks.
func (b *Buffer) MarkNames() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.marks))
	for name := range b.marks {
		names = append(names, name)
	}
	return names
}

// transformMarksLocked updates every mark after [from, oldEnd) was replaced
// by text ending at newEnd.
func (b *Buffer) transformMarksLocked(from, oldEnd, newEnd Position) {
	for _, m := range b.marks {
		m.pos = TransformPosition(m.pos, from, oldEnd, newEnd, m.gravity)
	}
}

// TransformPosition returns where pos ends up after the text in
// [from, oldEnd) was replaced by text spanning [from, newEnd).
//
// Rules:
//   - before the edit: unchanged
//   - at an insertion point: stays (left gravity) or moves past it (right)
//   - inside the replaced span: start of the edit (left) or end of new text (right)
//   - at or after the replaced span: shifted by the edit's row/column delta
func TransformPosition(pos, from, oldEnd, newEnd Position, gravity Gravity) Position {
	if pos.Before(from) {
		return pos
	}

	if pos == from && from == oldEnd {
		if gravity == GravityLeft {
			return pos
		}
		return newEnd
	}

	if pos.Before(oldEnd) {
		if gravity == GravityLeft {
			return from
		}
		return newEnd
	}

	if pos.Row == oldEnd.Row {
		return Position{Row: newEnd.Row, Col: newEnd.Col + pos.Col - oldEnd.Col}
	}
	return Position{Row: pos.Row + newEnd.Row - oldEnd.Row, Col: pos.Col}
}
