// SPDX-License-Identifier: EPL-2.0

package dataset

// Iterator walks an Index for a single caller. It is not safe for
// concurrent use. A nil Iterator behaves as an empty one.
type Iterator struct {
	index  *Index
	cursor Cursor
}

// NewIterator returns an iterator positioned before the first entry of x.
func NewIterator(x *Index) *Iterator {
	return &Iterator{index: x}
}

// Len returns the size of the underlying index.
func (it *Iterator) Len() int {
	if it == nil {
		return 0
	}
	return it.index.Len()
}

// Index returns the underlying index.
func (it *Iterator) Index() *Index {
	if it == nil {
		return nil
	}
	return it.index
}

// Next advances to the following entry.
func (it *Iterator) Next() (Entry, bool) {
	if it == nil {
		return Entry{}, false
	}

	c, e, ok := it.index.Next(it.cursor)
	it.cursor = c
	return e, ok
}

// Previous steps back to the preceding entry.
func (it *Iterator) Previous() (Entry, bool) {
	if it == nil {
		return Entry{}, false
	}

	c, e, ok := it.index.Previous(it.cursor)
	it.cursor = c
	return e, ok
}

// Current returns the entry last returned by Next or Previous.
func (it *Iterator) Current() (Entry, bool) {
	if it == nil {
		return Entry{}, false
	}
	return it.index.Current(it.cursor)
}

// CurrentPath returns the path of the current entry, or false before the
// first move.
func (it *Iterator) CurrentPath() (string, bool) {
	e, ok := it.Current()
	if !ok {
		return "", false
	}
	return e.Path, true
}
