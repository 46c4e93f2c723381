// SPDX-License-Identifier: EPL-2.0

package dataset

import "slices"

// Index is an ordered, immutable list of entries. It is safe for
// concurrent reads; the navigation state lives in Cursor values.
type Index struct {
	entries []Entry
}

// NewIndex builds an index over entries. The slice is copied.
func NewIndex(entries []Entry) *Index {
	return &Index{entries: slices.Clone(entries)}
}

// Len returns the number of entries. A nil index is empty.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// At returns the entry at position i.
func (x *Index) At(i int) (Entry, bool) {
	if i < 0 || i >= x.Len() {
		return Entry{}, false
	}
	return x.entries[i], true
}

// Entries returns a copy of all entries in order.
func (x *Index) Entries() []Entry {
	if x == nil {
		return nil
	}
	return slices.Clone(x.entries)
}

// Cursor is a position within an Index. The zero value sits before the
// first entry.
type Cursor struct {
	pos int
	set bool
}

// Position returns the current position, or false before the first move.
func (c Cursor) Position() (int, bool) {
	return c.pos, c.set
}

// Next moves c forward by one, wrapping from the last entry to the first.
// From the zero cursor it lands on the first entry.
func (x *Index) Next(c Cursor) (Cursor, Entry, bool) {
	return x.step(c, 1)
}

// Previous moves c back by one, wrapping from the first entry to the last.
// From the zero cursor it lands on the last entry.
func (x *Index) Previous(c Cursor) (Cursor, Entry, bool) {
	return x.step(c, -1)
}

func (x *Index) step(c Cursor, delta int) (Cursor, Entry, bool) {
	n := x.Len()
	if n == 0 {
		return c, Entry{}, false
	}

	var pos int
	switch {
	case c.set:
		pos = (c.pos%n + delta + n) % n
	case delta > 0:
		pos = 0
	default:
		pos = n - 1
	}

	return Cursor{pos: pos, set: true}, x.entries[pos], true
}

// Current returns the entry under c.
func (x *Index) Current(c Cursor) (Entry, bool) {
	if !c.set {
		return Entry{}, false
	}
	return x.At(c.pos)
}
