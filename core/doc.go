// SPDX-License-Identifier: MIT

// Package core provides a dense adjacency-matrix Graph with generic vertex
// and edge payloads and a minimal, deterministic API surface.
//
// The Graph G = (V,E) supports:
//
//   - Any comparable vertex payload with a total order (New for cmp.Ordered
//     types, NewFunc with an explicit comparator for structs).
//   - Any edge payload E; Unweighted marks graphs whose edges carry no value.
//   - One Topology fixed at construction:
//     Directed: (u,v) never implies (v,u);
//     Undirected: every edge is mirrored in (v,u);
//     Mixed: direction decided per edge via WithEdgeDirected, undirected by default.
//   - Constant-time edge operations via a V×V cell store (package matrix),
//     addressed by the dense indices of an append-only vertex Index.
//
// Why a matrix?
//
//   - O(1) HasEdge/EdgeValue/AddEdge/RemoveEdge/UpdateEdge regardless of degree.
//   - O(V²) memory: the right trade for dense or moderately sized graphs.
//
// Core Methods:
//
//	// Vertex lifecycle (append-only)
//	AddVertex(vs ...V) error              // idempotent, one store resize per call
//	HasVertex(v V) bool                   // O(1)
//	IndexOf(v V) (int, error)             // O(1)
//	Vertices() []V                        // insertion order
//
//	// Edge lifecycle
//	AddEdge(src, dest V, value E, opts ...EdgeOption) error
//	AddUnweightedEdge(src, dest V, opts ...EdgeOption) error
//	RemoveEdge(src, dest V) error         // clears the mirror iff the stored edge is undirected
//	UpdateEdge(src, dest V, value E) error // keeps orientation
//
//	// Query
//	HasEdge(src, dest V) (bool, error)
//	GetEdge(src, dest V) (Edge[V,E], error)
//	EdgeValue(src, dest V) (E, error)
//	Edges() []Edge[V,E]                   // each logical edge once
//	InDegree / OutDegree / TotalDegree
//	Neighbors(v V) ([]V, error)           // sorted, deduplicated
//	Successors(v V) ([]V, error)          // sorted out-neighbors
//
// Errors:
//
//	ErrVertexNotFound       – any operation naming an unknown vertex (HasEdge included)
//	ErrEdgeNotFound         – GetEdge/EdgeValue/UpdateEdge on an empty cell
//	ErrWrongTopology        – InDegree/OutDegree on an Undirected graph
//	ErrMixedEdgesNotAllowed – WithEdgeDirected on a non-Mixed graph
//
// Concurrency: a Graph holds no locks. Callers sharing one across goroutines
// serialize mutations against each other and against reads. Every returned
// slice is an independent snapshot, never a live view.
//
// The engine never writes diagnostics anywhere; every failure is a returned error.
package core
