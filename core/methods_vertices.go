// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries, plus index resolution shared by edge methods.
//
// Determinism:
//   - Vertices() returns vertices in insertion (index) order.
//
// AI-Hints (file):
//   - AddVertex is idempotent; re-adding a vertex never touches its edges.
//   - Pass many vertices to one AddVertex call: the cell store is resized once per call.
package core

import "fmt"

// Method tags used in error wrappers.
const (
	methodAddVertex   = "AddVertex"
	methodIndexOf     = "IndexOf"
	methodAddEdge     = "AddEdge"
	methodRemoveEdge  = "RemoveEdge"
	methodUpdateEdge  = "UpdateEdge"
	methodHasEdge     = "HasEdge"
	methodGetEdge     = "GetEdge"
	methodEdgeValue   = "EdgeValue"
	methodInDegree    = "InDegree"
	methodOutDegree   = "OutDegree"
	methodTotalDegree = "TotalDegree"
	methodNeighbors   = "Neighbors"
	methodSuccessors  = "Successors"
)

// AddVertex inserts every vertex in vs that is not yet indexed.
//
// Implementation:
//   - Stage 1: Index each vertex; already present vertices are skipped.
//   - Stage 2: If the vertex count changed, resize the cell store once to
//     the new V×V extent, relocating every existing cell.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op, not an error.
//   - New vertices start with no incident edges.
//
// Errors:
//   - None for valid input; a store failure here means a broken invariant and is returned wrapped.
//
// Complexity:
//   - Time O(len(vs)) for indexing plus O(V²) once if any vertex was new.
func (g *Graph[V, E]) AddVertex(vs ...V) error {
	before := g.index.Len()
	for _, v := range vs {
		g.index.Add(v)
	}
	if g.index.Len() == before {
		return nil
	}
	if err := g.cells.Resize(g.index.Len()); err != nil {
		return fmt.Errorf("%s: %w", methodAddVertex, err)
	}

	return nil
}

// HasVertex reports whether v is indexed.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool { return g.index.Has(v) }

// IndexOf returns the dense index assigned to v.
//
// Errors:
//   - ErrVertexNotFound if v was never added.
func (g *Graph[V, E]) IndexOf(v V) (int, error) {
	i, err := g.index.IndexOf(v)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", methodIndexOf, err)
	}

	return i, nil
}

// Vertices returns a snapshot of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[V, E]) Vertices() []V { return g.index.Vertices() }

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int { return g.index.Len() }

// resolve maps v to its index, wrapping ErrVertexNotFound with method context.
func (g *Graph[V, E]) resolve(method string, v V) (int, error) {
	i, err := g.index.IndexOf(v)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", method, err)
	}

	return i, nil
}

// resolvePair maps both endpoints of an edge operation to their indices.
func (g *Graph[V, E]) resolvePair(method string, src, dest V) (int, int, error) {
	si, err := g.resolve(method, src)
	if err != nil {
		return -1, -1, err
	}
	di, err := g.resolve(method, dest)
	if err != nil {
		return -1, -1, err
	}

	return si, di, nil
}
