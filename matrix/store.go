// SPDX-License-Identifier: MIT

// Package matrix - dense N×N cell storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Clear return errors instead of panicking.
//   - Own the growth policy: Resize relocates every stored cell to its offset under the new extent.
//
// Complexity quicksheet:
//   - NewStore: O(n²) zero-init; At/Set/Clear: O(1); Resize: O(n'²); Clone: O(n²).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxClear  = "Clear"
	ctxResize = "Resize"
)

// storeErrorf wraps a sentinel with a uniform Store context and callsite indices.
func storeErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Store.%s(%d,%d): %w", method, row, col, err)
}

// Store is a square row-major table of cells.
//   - n is the extent (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Store[E any] struct {
	n    int       // current extent
	data []Cell[E] // contiguous row-major storage (len == n*n)
}

// NewStore creates an n×n store of empty cells.
//
// Implementation:
//   - Stage 1: validate n >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of n*n cells.
//
// Behavior highlights:
//   - n == 0 is legal: a graph starts with no vertices.
//
// Errors:
//   - ErrInvalidDimensions (negative extent).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewStore[E any](n int) (*Store[E], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewStore(%d): %w", n, ErrInvalidDimensions)
	}

	return &Store[E]{n: n, data: make([]Cell[E], n*n)}, nil
}

// Size returns the current extent n.
func (s *Store[E]) Size() int {
	if s == nil {
		return 0
	}

	return s.n
}

// offset maps (row, col) to the flat buffer position under the current extent.
// Callers must have validated bounds.
func (s *Store[E]) offset(row, col int) int { return row*s.n + col }

// inBounds reports whether (row, col) addresses a cell of the current extent.
func (s *Store[E]) inBounds(row, col int) bool {
	return row >= 0 && row < s.n && col >= 0 && col < s.n
}

// At returns the cell at (row, col).
//
// Errors:
//   - ErrNilStore, ErrOutOfRange (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Store[E]) At(row, col int) (Cell[E], error) {
	var zero Cell[E]
	if s == nil {
		return zero, ErrNilStore
	}
	if !s.inBounds(row, col) {
		return zero, storeErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return s.data[s.offset(row, col)], nil
}

// Set overwrites the cell at (row, col).
//
// Errors:
//   - ErrNilStore, ErrOutOfRange (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Store[E]) Set(row, col int, c Cell[E]) error {
	if s == nil {
		return ErrNilStore
	}
	if !s.inBounds(row, col) {
		return storeErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	s.data[s.offset(row, col)] = c

	return nil
}

// Clear resets the cell at (row, col) to the empty state.
// Clearing an already empty cell is a no-op.
func (s *Store[E]) Clear(row, col int) error {
	if s == nil {
		return ErrNilStore
	}
	if !s.inBounds(row, col) {
		return storeErrorf(ctxClear, row, col, ErrOutOfRange)
	}
	s.data[s.offset(row, col)] = Cell[E]{}

	return nil
}

// Resize grows the extent to newN, keeping every stored cell at its (row, col).
//
// Implementation:
//   - Stage 1: validate newN >= n (ErrShrink); newN == n is a no-op.
//   - Stage 2: allocate a fresh newN*newN buffer.
//   - Stage 3: copy each old row into its recomputed offset row*newN.
//
// Behavior highlights:
//   - The offset formula depends on the extent, so the old buffer is never
//     grown in place: cell (i,j) moves from i*n+j to i*newN+j.
//   - New rows and columns start empty.
//
// Errors:
//   - ErrNilStore, ErrShrink.
//
// Complexity:
//   - Time O(newN²), Space O(newN²).
func (s *Store[E]) Resize(newN int) error {
	if s == nil {
		return ErrNilStore
	}
	if newN < s.n {
		return fmt.Errorf("Store.%s(%d) from %d: %w", ctxResize, newN, s.n, ErrShrink)
	}
	if newN == s.n {
		return nil
	}

	buf := make([]Cell[E], newN*newN)
	var row int
	for row = 0; row < s.n; row++ {
		// copy one whole row: old [row*n, row*n+n) -> new [row*newN, row*newN+n)
		copy(buf[row*newN:row*newN+s.n], s.data[row*s.n:row*s.n+s.n])
	}
	s.data = buf
	s.n = newN

	return nil
}

// Clone returns an independent deep copy of the store.
// Cell values are copied by assignment; reference-typed payloads are shared.
func (s *Store[E]) Clone() *Store[E] {
	if s == nil {
		return nil
	}
	buf := make([]Cell[E], len(s.data))
	copy(buf, s.data)

	return &Store[E]{n: s.n, data: buf}
}
