// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) on
// core.Graph. It follows each cell's own orientation, so directed, undirected
// and mixed graphs need no special casing: neighbors are core.Graph.Successors.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal.
//   - AllPaths(g, src, dst, opts...): enumerate every simple path by backtracking.
//   - Limits: WithMaxDepth, WithLimit.
//   - Cancellation via context.Context.
//
// Complexity:
//
//   - DFS:      O(V²) time on the dense store (V successor scans of O(V) each), O(V) memory.
//   - AllPaths: exponential in the worst case (complete graphs); memory O(V) plus the result.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if the DFS start vertex is missing.
//   - core.ErrVertexNotFound    if an AllPaths endpoint is missing.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[V comparable, E any] struct {
	graph *core.Graph[V, E] // underlying graph
	opts  Options           // traversal options
	res   *DFSResult[V]     // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components in vertex insertion order; otherwise it
// starts only from start. Successors are visited in the graph's vertex order.
// Returns the partial DFSResult together with the error if aborted by context.
func DFS[V comparable, E any](g *core.Graph[V, E], start V, opts ...Option) (*DFSResult[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := resolveOptions(opts)

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("DFS(%v): %w", start, ErrStartVertexNotFound)
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult[V]{
		Order:   make([]V, 0, len(vertices)),
		Depth:   make(map[V]int, len(vertices)),
		Parent:  make(map[V]V, len(vertices)),
		Visited: make(map[V]bool, len(vertices)),
	}

	walker := &dfsWalker[V, E]{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}

		return res, nil
	}
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at the given depth, recursing into unvisited successors.
func (w *dfsWalker[V, E]) traverse(id V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Depth limit: do not expand beyond MaxDepth
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		succ, err := w.graph.Successors(id)
		if err != nil {
			return fmt.Errorf("dfs: Successors(%v): %w", id, err)
		}
		for _, nid := range succ {
			if w.res.Visited[nid] {
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
