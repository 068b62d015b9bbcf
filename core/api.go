// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing configuration getters and snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.
// AI-HINT (file):
//   - Use NewMixed(...) before passing WithEdgeDirected(...) to AddEdge.
//   - Stats() is an O(V²) snapshot; rely on it for quick admissions/diagnostics.

package core

import "cmp"

// NewMixed creates an empty Mixed graph over an ordered vertex type.
//
// Behavior highlights:
//   - Enables WithEdgeDirected(...) on AddEdge; edges default to undirected.
//
// Complexity:
//   - Time O(len(opts)).
//
// AI-Hints:
//   - Prefer this constructor when you plan to mix directed and undirected edges in one graph.
func NewMixed[V cmp.Ordered, E any](opts ...Option) (*Graph[V, E], error) {
	return New[V, E](Mixed, opts...)
}

// Topology reports the construction-time topology. It never changes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V, E]) Topology() Topology { return g.topology }

// Compare orders two vertices with the graph's comparator.
func (g *Graph[V, E]) Compare(a, b V) int { return g.compare(a, b) }

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	// Topology is the construction-time topology.
	Topology Topology `json:"topology"`

	// VertexCount is the number of indexed vertices.
	VertexCount int `json:"vertex_count"`

	// EdgeCount is the number of logical edges (DirectedEdgeCount + UndirectedEdgeCount).
	EdgeCount int `json:"edge_count"`

	// DirectedEdgeCount counts one-way edges.
	DirectedEdgeCount int `json:"directed_edge_count"`

	// UndirectedEdgeCount counts mirrored edges once each.
	UndirectedEdgeCount int `json:"undirected_edge_count"`
}

// Stats produces a deterministic snapshot of the topology and catalog sizes,
// including a classification of edges by orientation.
//
// Implementation:
//   - Stage 1: Capture topology and vertex count.
//   - Stage 2: Scan the store once, counting directed cells and undirected pairs.
//
// Complexity:
//   - Time O(V²), Space O(1) plus the returned struct.
//
// AI-Hints:
//   - Use Stats() in tests to assert edge enumeration exactness without building Edges().
func (g *Graph[V, E]) Stats() *GraphStats {
	directed, undirected := g.countEdges()

	return &GraphStats{
		Topology:            g.topology,
		VertexCount:         g.index.Len(),
		EdgeCount:           directed + undirected,
		DirectedEdgeCount:   directed,
		UndirectedEdgeCount: undirected,
	}
}
