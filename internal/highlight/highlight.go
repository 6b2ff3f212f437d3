// Package highlight stores named sets of highlighted text ranges (tags) and
// a permission gate that restricts which tags may change while a gesture is
// in progress.
package highlight

import (
	"errors"
	"sort"
	"sync"

	"github.com/dshills/boxedit/internal/engine/buffer"
)

// Well-known tags.
const (
	// TagSelection is the standard selection highlight.
	TagSelection = "sel"
	// TagBox is the live box-selection highlight shown during a gesture.
	TagBox = "boxselect"
)

// ErrGated is returned by Check when a tag is blocked by the gate.
var ErrGated = errors.New("tag blocked by active gesture")

// Store holds highlighted ranges per tag. All methods are thread-safe.
type Store struct {
	mu       sync.RWMutex
	tags     map[string][]buffer.Range
	allowed  map[string]bool // nil when the gate is open
	revision uint64
}

// New creates an empty, ungated store.
func New() *Store {
	return &Store{tags: make(map[string][]buffer.Range)}
}

// Gate blocks mutation of every tag except allowed until Ungate.
func (s *Store) Gate(allowed ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.allowed = make(map[string]bool, len(allowed))
	for _, tag := range allowed {
		s.allowed[tag] = true
	}
}

// Ungate lets every tag change again.
func (s *Store) Ungate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowed = nil
}

// Gated returns true while a gate is active.
func (s *Store) Gated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowed != nil
}

// Check returns ErrGated if tag may not change right now.
func (s *Store) Check(tag string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.permitsLocked(tag) {
		return ErrGated
	}
	return nil
}

func (s *Store) permitsLocked(tag string) bool {
	return s.allowed == nil || s.allowed[tag]
}

// Add tags ranges. Empty ranges are ignored. It returns false and changes
// nothing when the gate blocks tag.
func (s *Store) Add(tag string, ranges ...buffer.Range) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.permitsLocked(tag) {
		return false
	}
	s.addLocked(tag, ranges)
	return true
}

// Set replaces every range of tag in one step, so readers never observe
// the tag empty.
func (s *Store) Set(tag string, ranges ...buffer.Range) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.permitsLocked(tag) {
		return false
	}
	delete(s.tags, tag)
	s.addLocked(tag, ranges)
	return true
}

func (s *Store) addLocked(tag string, ranges []buffer.Range) {
	for _, r := range ranges {
		r = buffer.NewRange(r.Start, r.End)
		if r.IsEmpty() {
			continue
		}
		s.tags[tag] = append(s.tags[tag], r)
	}
	s.normalizeLocked(tag)
	s.revision++
}

// Clear removes every range of tag.
func (s *Store) Clear(tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.permitsLocked(tag) {
		return false
	}
	delete(s.tags, tag)
	s.revision++
	return true
}

// Replace moves every range of from onto to. Both tags must be permitted.
func (s *Store) Replace(from, to string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.permitsLocked(from) || !s.permitsLocked(to) {
		return false
	}
	ranges := s.tags[from]
	delete(s.tags, from)
	s.tags[to] = append(s.tags[to], ranges...)
	s.normalizeLocked(to)
	s.revision++
	return true
}

// normalizeLocked sorts ranges and merges overlapping or touching ones on
// the same row span.
func (s *Store) normalizeLocked(tag string) {
	ranges := s.tags[tag]
	if len(ranges) == 0 {
		delete(s.tags, tag)
		return
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start.Before(ranges[j].Start)
	})

	merged := ranges[:1]
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if !r.Start.After(last.End) {
			*last = last.Union(r)
			continue
		}
		merged = append(merged, r)
	}
	s.tags[tag] = merged
}

// Ranges returns the ranges of tag in buffer order.
func (s *Store) Ranges(tag string) []buffer.Range {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]buffer.Range(nil), s.tags[tag]...)
}

// Extent returns the span from the first range's start to the last range's
// end.
func (s *Store) Extent(tag string) (buffer.Range, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranges := s.tags[tag]
	if len(ranges) == 0 {
		return buffer.Range{}, false
	}
	return buffer.Range{Start: ranges[0].Start, End: ranges[len(ranges)-1].End}, true
}

// Contains reports whether the character at pos carries tag.
func (s *Store) Contains(tag string, pos buffer.Position) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.tags[tag] {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// Has returns true if tag has any ranges.
func (s *Store) Has(tag string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tags[tag]) > 0
}

// TagsAt returns the sorted names of tags covering pos.
func (s *Store) TagsAt(pos buffer.Position) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for tag, ranges := range s.tags {
		for _, r := range ranges {
			if r.Contains(pos) {
				names = append(names, tag)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// Revision returns a counter incremented by every change.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
