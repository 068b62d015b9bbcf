// SPDX-License-Identifier: MIT

// File: index.go
// Role: VertexIndex - append-only bidirectional mapping vertex <-> dense index.
// Invariant:
//   - every index in [0, Len()) maps to exactly one vertex and vice versa.
//   - indices are assigned sequentially in insertion order and never reused.

package core

import "fmt"

// Index is an append-only bidirectional vertex index.
type Index[V comparable] struct {
	pos   map[V]int // vertex -> index
	order []V       // index -> vertex (insertion order)
}

// NewIndex returns an empty Index reserving room for capacity vertices.
func NewIndex[V comparable](capacity int) *Index[V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Index[V]{
		pos:   make(map[V]int, capacity),
		order: make([]V, 0, capacity),
	}
}

// Add indexes v if missing and returns its index.
// added is false when v was already present (idempotent, not an error).
// Complexity: O(1) amortized.
func (x *Index[V]) Add(v V) (idx int, added bool) {
	if i, ok := x.pos[v]; ok {
		return i, false
	}
	idx = len(x.order)
	x.pos[v] = idx
	x.order = append(x.order, v)

	return idx, true
}

// IndexOf returns the index of v or ErrVertexNotFound.
func (x *Index[V]) IndexOf(v V) (int, error) {
	i, ok := x.pos[v]
	if !ok {
		return -1, fmt.Errorf("vertex %v: %w", v, ErrVertexNotFound)
	}

	return i, nil
}

// Has reports whether v is indexed.
func (x *Index[V]) Has(v V) bool {
	_, ok := x.pos[v]

	return ok
}

// At returns the vertex stored at index i. i must be in [0, Len()).
func (x *Index[V]) At(i int) V { return x.order[i] }

// Len returns the number of indexed vertices.
func (x *Index[V]) Len() int { return len(x.order) }

// Vertices returns a copy of all vertices in insertion order.
func (x *Index[V]) Vertices() []V {
	out := make([]V, len(x.order))
	copy(out, x.order)

	return out
}

// Clone returns an independent copy of the index.
func (x *Index[V]) Clone() *Index[V] {
	cp := &Index[V]{
		pos:   make(map[V]int, len(x.pos)),
		order: make([]V, len(x.order)),
	}
	copy(cp.order, x.order)
	for v, i := range x.pos {
		cp.pos[v] = i
	}

	return cp
}
