// SPDX-License-Identifier: MIT

// Package bfs implements breadth-first search on core.Graph.
//
// What:
//
//   - BFS(g, start, opts...) visits vertices level by level and records the
//     visit Order, the hop Depth of every reached vertex and its BFS-tree Parent.
//   - BFSResult.PathTo(dest) rebuilds a fewest-hops route from the start.
//
// Options:
//
//   - WithContext(ctx): cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):  do not expand vertices at depth ≥ d (0 = unlimited).
//
// Complexity:
//
//   - Time:   O(V²) on the dense adjacency store (one row scan per vertex).
//   - Memory: O(V).
//
// Errors:
//
//   - ErrGraphNil            nil graph
//   - ErrStartVertexNotFound start vertex absent (matches core.ErrVertexNotFound)
//   - ErrOptionViolation     negative MaxDepth
//   - ErrNoPath              PathTo on an unreached vertex
package bfs
