// SPDX-License-Identifier: MIT

// Package dfs implements depth‑first algorithms on a core.Graph: traversal,
// all-simple-paths enumeration, cycle detection and topological sort.
// Every algorithm follows each cell's own orientation, so directed,
// undirected and mixed graphs share one code path.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Cancellation via context.Context
//   - Depth limiting
//   - Forest traversal over disconnected components
//   - AllPaths: enumerates every simple path between two vertices by
//     backtracking with an on-path set; supports depth and result limits.
//   - DetectCycles: reports the simple cycles closed by DFS back edges,
//     in canonical rotation.
//   - TopologicalSort: computes a linear ordering of the directed edges
//     of a Directed or Mixed graph, returning ErrCycleDetected if they
//     contain a cycle.
//
// Key Types & Constants:
//
//   - White, Gray, Black (visitation markers)
//   - Option / Options: Ctx, MaxDepth, Limit, FullTraversal
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:             Time O(V²) on the dense store, Memory O(V)
//   - AllPaths:        Time exponential in the worst case, Memory O(V) + result
//   - DetectCycles:    Time O(V² + C·L), Memory O(V + C·L)
//   - TopologicalSort: Time O(V²), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - core.ErrVertexNotFound  AllPaths endpoint not in graph
//   - core.ErrWrongTopology   TopologicalSort on an Undirected graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        search canceled via context
package dfs
