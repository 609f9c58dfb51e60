package isoview

import (
	"cmp"
	"slices"
)

// DrawEntry is one sprite (plus optional cursor overlay) to blit.
type DrawEntry struct {
	Depth  int     // painter's-algorithm key; drawn in ascending order
	Sprite *Sprite // ground sprite
	Cursor *Sprite // cursor overlay drawn over Sprite, may be nil
	Base   Point   // screen position of the sprite's top-left corner
}

const defaultDrawListCap = 1024

// DrawList holds draw entries ordered by depth. Several entries may share a
// depth; they keep their insertion order, which is the walker's scan order.
type DrawList struct {
	entries []DrawEntry
	sorted  bool
}

// NewDrawList creates an empty list with room for a typical frame.
func NewDrawList() *DrawList {
	return &DrawList{
		entries: make([]DrawEntry, 0, defaultDrawListCap),
		sorted:  true,
	}
}

// Insert adds e to the list.
func (l *DrawList) Insert(e DrawEntry) {
	if n := len(l.entries); l.sorted && n > 0 && l.entries[n-1].Depth > e.Depth {
		l.sorted = false
	}
	l.entries = append(l.entries, e)
}

// Len returns the number of entries.
func (l *DrawList) Len() int {
	return len(l.entries)
}

// Reset empties the list, keeping its buffer.
func (l *DrawList) Reset() {
	l.entries = l.entries[:0]
	l.sorted = true
}

// Entries returns the entries in ascending depth order. The returned slice
// is owned by the list and is invalidated by the next Insert or Reset.
func (l *DrawList) Entries() []DrawEntry {
	if !l.sorted {
		slices.SortStableFunc(l.entries, compareDepth)
		l.sorted = true
	}
	return l.entries
}

func compareDepth(a, b DrawEntry) int {
	return cmp.Compare(a.Depth, b.Depth)
}
