// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning graph instances.
// AI-HINT (file):
//   - CloneEmpty keeps vertices and their indices; Clone also copies every cell.
//   - Payloads are copied by assignment: pointer/map/slice payloads stay shared.

package core

import "github.com/katalvlaran/appledore/matrix"

// CloneEmpty returns a new Graph with identical topology, comparator and
// vertices (same indices), but no edges.
//
// Complexity: O(V²) to allocate the empty store.
func (g *Graph[V, E]) CloneEmpty() *Graph[V, E] {
	idx := g.index.Clone()
	cells, err := matrix.NewStore[E](idx.Len())
	if err != nil {
		panic("core: CloneEmpty: " + err.Error())
	}

	return &Graph[V, E]{topology: g.topology, compare: g.compare, index: idx, cells: cells}
}

// Clone returns a deep copy of the Graph: topology, vertices, and every cell.
// Mutations of the clone never affect g and vice versa.
//
// Complexity: O(V²).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	return &Graph[V, E]{
		topology: g.topology,
		compare:  g.compare,
		index:    g.index.Clone(),
		cells:    g.cells.Clone(),
	}
}
