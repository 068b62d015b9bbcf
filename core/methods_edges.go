// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries:
//   - AddEdge/AddUnweightedEdge/RemoveEdge/UpdateEdge.
//   - HasEdge/GetEdge/EdgeValue/Edges/EdgeCount.
//
// Cell invariant (all topologies):
//   - cell(i,j) holds an undirected edge  <=>  cell(j,i) holds the same undirected edge.
//   - a directed cell owns only its own slot.
//
// Determinism:
//   - Edges() walks the store row-major, i.e. by (index(from), index(to)) ascending.
//
// AI-HINT (file):
//   - WithEdgeDirected is legal only on Mixed graphs; otherwise ErrMixedEdgesNotAllowed.
//   - HasEdge is strict: unknown vertices yield ErrVertexNotFound, never a silent false.
package core

import (
	"fmt"

	"github.com/katalvlaran/appledore/matrix"
)

// AddEdge writes the edge src→dest carrying value.
//
// Steps:
//  1. Resolve orientation: Directed ⇒ one-way, Undirected ⇒ mirrored,
//     Mixed ⇒ WithEdgeDirected(...) or mirrored when omitted.
//  2. Resolve both endpoints (ErrVertexNotFound).
//  3. If (src,dest) currently holds an undirected edge and the new edge is
//     directed, clear the stale mirror (dest,src).
//  4. Write cell(src,dest); if undirected also write the identical cell(dest,src).
//
// Behavior highlights:
//   - Re-adding an existing edge replaces its payload and orientation.
//   - An undirected edge owns both slots, so it replaces any directed edge dest→src.
//   - Self-loops occupy the single diagonal slot.
//
// Errors:
//   - ErrMixedEdgesNotAllowed if opts are given on a non-Mixed graph.
//   - ErrVertexNotFound if either endpoint is unknown.
//
// Complexity: O(1).
func (g *Graph[V, E]) AddEdge(src, dest V, value E, opts ...EdgeOption) error {
	if len(opts) > 0 && g.topology != Mixed {
		return fmt.Errorf("%s(%v,%v) on %s graph: %w", methodAddEdge, src, dest, g.topology, ErrMixedEdgesNotAllowed)
	}
	eo := edgeOptions{directed: g.topology == Directed}
	for _, opt := range opts {
		opt(&eo)
	}

	si, di, err := g.resolvePair(methodAddEdge, src, dest)
	if err != nil {
		return err
	}

	if prev := g.at(si, di); prev.Undirected() && eo.directed {
		g.clear(di, si)
	}

	cell := matrix.NewCell(value, eo.directed)
	g.set(si, di, cell)
	if !eo.directed {
		g.set(di, si, cell)
	}

	return nil
}

// AddUnweightedEdge adds src→dest carrying the zero value of E.
// Use it with E = Unweighted, or when only the orientation matters.
func (g *Graph[V, E]) AddUnweightedEdge(src, dest V, opts ...EdgeOption) error {
	var zero E

	return g.AddEdge(src, dest, zero, opts...)
}

// RemoveEdge clears src→dest, and its mirror when the stored edge is undirected.
//
// Implementation:
//   - Stage 1: Resolve both endpoints (ErrVertexNotFound).
//   - Stage 2: Read the stored cell; an empty cell is a no-op.
//   - Stage 3: Clear (src,dest); clear (dest,src) iff the stored cell was undirected.
//
// Behavior highlights:
//   - The mirror decision uses the stored flag, never the topology default,
//     so removing a directed Mixed edge leaves any reverse edge intact.
//
// Complexity: O(1).
func (g *Graph[V, E]) RemoveEdge(src, dest V) error {
	si, di, err := g.resolvePair(methodRemoveEdge, src, dest)
	if err != nil {
		return err
	}

	prev := g.at(si, di)
	if prev.Empty() {
		return nil
	}
	g.clear(si, di)
	if !prev.Directed {
		g.clear(di, si)
	}

	return nil
}

// UpdateEdge replaces the payload of an existing edge src→dest.
// The stored orientation is preserved; an undirected edge is updated in both slots.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrEdgeNotFound if no edge src→dest exists.
//
// Complexity: O(1).
func (g *Graph[V, E]) UpdateEdge(src, dest V, value E) error {
	si, di, err := g.resolvePair(methodUpdateEdge, src, dest)
	if err != nil {
		return err
	}

	prev := g.at(si, di)
	if prev.Empty() {
		return fmt.Errorf("%s(%v,%v): %w", methodUpdateEdge, src, dest, ErrEdgeNotFound)
	}
	cell := matrix.NewCell(value, prev.Directed)
	g.set(si, di, cell)
	if !prev.Directed {
		g.set(di, si, cell)
	}

	return nil
}

// HasEdge reports whether cell src→dest holds an edge.
// Undirected edges are mirrored, so HasEdge answers true in both directions.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown. There is no lenient
//     variant: callers that want false for unknown vertices check HasVertex first.
//
// Complexity: O(1).
func (g *Graph[V, E]) HasEdge(src, dest V) (bool, error) {
	si, di, err := g.resolvePair(methodHasEdge, src, dest)
	if err != nil {
		return false, err
	}

	return g.at(si, di).Present, nil
}

// GetEdge returns the edge src→dest with its payload and orientation.
//
// Errors:
//   - ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph[V, E]) GetEdge(src, dest V) (Edge[V, E], error) {
	si, di, err := g.resolvePair(methodGetEdge, src, dest)
	if err != nil {
		return Edge[V, E]{}, err
	}
	c := g.at(si, di)
	if c.Empty() {
		return Edge[V, E]{}, fmt.Errorf("%s(%v,%v): %w", methodGetEdge, src, dest, ErrEdgeNotFound)
	}

	return Edge[V, E]{From: src, To: dest, Value: c.Value, Directed: c.Directed}, nil
}

// EdgeValue returns the payload of the edge src→dest.
//
// Errors:
//   - ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph[V, E]) EdgeValue(src, dest V) (E, error) {
	var zero E
	si, di, err := g.resolvePair(methodEdgeValue, src, dest)
	if err != nil {
		return zero, err
	}
	c := g.at(si, di)
	if c.Empty() {
		return zero, fmt.Errorf("%s(%v,%v): %w", methodEdgeValue, src, dest, ErrEdgeNotFound)
	}

	return c.Value, nil
}

// Edges enumerates every logical edge exactly once.
//
// Policy:
//   - directed cells are reported as stored (from=row, to=col);
//   - an undirected edge occupies two cells and is reported once, from the
//     cell with index(from) <= index(to).
//
// Complexity: O(V²) time, O(E) space for the returned snapshot.
func (g *Graph[V, E]) Edges() []Edge[V, E] {
	n := g.index.Len()
	out := make([]Edge[V, E], 0, n)
	var (
		i, j int
		c    matrix.Cell[E]
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c = g.at(i, j)
			if c.Empty() || (!c.Directed && i > j) {
				continue
			}
			out = append(out, Edge[V, E]{
				From:     g.index.At(i),
				To:       g.index.At(j),
				Value:    c.Value,
				Directed: c.Directed,
			})
		}
	}

	return out
}

// EdgeCount returns the number of logical edges, matching len(Edges()).
// Complexity: O(V²) time, O(1) space.
func (g *Graph[V, E]) EdgeCount() int {
	directed, undirected := g.countEdges()

	return directed + undirected
}

// countEdges splits the logical edge count by orientation.
func (g *Graph[V, E]) countEdges() (directed, undirected int) {
	n := g.index.Len()
	var (
		i, j int
		c    matrix.Cell[E]
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c = g.at(i, j)
			switch {
			case c.Empty():
			case c.Directed:
				directed++
			case i <= j:
				undirected++
			}
		}
	}

	return directed, undirected
}

// at reads cell (i,j). Indices come from the vertex index, so a store
// error here is a broken invariant, not a user error.
func (g *Graph[V, E]) at(i, j int) matrix.Cell[E] {
	c, err := g.cells.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("core: index/store invariant violated: %v", err))
	}

	return c
}

// set writes cell (i,j); see at for the panic policy.
func (g *Graph[V, E]) set(i, j int, c matrix.Cell[E]) {
	if err := g.cells.Set(i, j, c); err != nil {
		panic(fmt.Sprintf("core: index/store invariant violated: %v", err))
	}
}

// clear empties cell (i,j); see at for the panic policy.
func (g *Graph[V, E]) clear(i, j int) {
	if err := g.cells.Clear(i, j); err != nil {
		panic(fmt.Sprintf("core: index/store invariant violated: %v", err))
	}
}
