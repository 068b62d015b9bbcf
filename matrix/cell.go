// SPDX-License-Identifier: MIT

package matrix

// Cell is the value stored for one ordered (row, col) pair of the store.
//
// A zero Cell is an empty slot: Present == false means "no edge", and Value
// and Directed carry no meaning. Directed records whether the edge written
// here owns only this slot (true) or is mirrored at (col, row) (false).
type Cell[E any] struct {
	// Value is the edge payload.
	Value E

	// Present distinguishes a stored edge from an empty slot.
	Present bool

	// Directed is true for one-way edges and false for mirrored ones.
	Directed bool
}

// NewCell returns a populated cell holding value with the given orientation.
func NewCell[E any](value E, directed bool) Cell[E] {
	return Cell[E]{Value: value, Present: true, Directed: directed}
}

// Empty reports whether the cell holds no edge.
func (c Cell[E]) Empty() bool { return !c.Present }

// Undirected reports whether the cell holds a mirrored edge.
func (c Cell[E]) Undirected() bool { return c.Present && !c.Directed }
