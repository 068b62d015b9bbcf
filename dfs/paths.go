// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// errLimitReached unwinds the backtracking search once Options.Limit paths are recorded.
var errLimitReached = errors.New("dfs: path limit reached")

// pathWalker holds the backtracking state of one AllPaths call.
type pathWalker[V comparable, E any] struct {
	graph   *core.Graph[V, E]
	dst     V
	opts    Options
	onPath  map[V]bool // vertices on the current path
	path    []V        // current path stack
	paths   [][]V      // recorded copies
	succMem map[V][]V  // successor lists, fetched once per vertex
}

// AllPaths enumerates every simple path (no repeated vertex) from src to dst,
// following the graph's edge-existence relation cell by cell: directed edges
// one way, undirected edges both ways.
//
// Implementation:
//   - Stage 1: Validate g and both endpoints (ErrGraphNil, core.ErrVertexNotFound).
//   - Stage 2: Depth-first backtracking. Keep the current path and an on-path set;
//     at each vertex visit successors not on the path in vertex order;
//     on reaching dst record a copy of the path; pop on exhaustion.
//
// Behavior highlights:
//   - src == dst yields an empty result: a simple path needs at least one edge
//     and may not revisit its start.
//   - Paths come out in lexicographic order of the graph's vertex order.
//   - Termination: no vertex repeats, so the search depth is bounded by V.
//   - WithMaxDepth bounds path length in edges; WithLimit stops early.
//
// Returns:
//   - [][]V: every path starts with src and ends with dst; empty (non-nil) when none exist.
//
// Complexity:
//   - Time exponential in the worst case; Space O(V) plus the result.
func AllPaths[V comparable, E any](g *core.Graph[V, E], src, dst V, opts ...Option) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("AllPaths: source %v: %w", src, core.ErrVertexNotFound)
	}
	if !g.HasVertex(dst) {
		return nil, fmt.Errorf("AllPaths: destination %v: %w", dst, core.ErrVertexNotFound)
	}

	paths := make([][]V, 0)
	if src == dst {
		return paths, nil
	}

	w := &pathWalker[V, E]{
		graph:   g,
		dst:     dst,
		opts:    resolveOptions(opts),
		onPath:  make(map[V]bool),
		path:    make([]V, 0, g.VertexCount()),
		paths:   paths,
		succMem: make(map[V][]V),
	}
	if err := w.visit(src); err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}

	return w.paths, nil
}

// visit pushes v, records the path if v is the destination, otherwise
// recurses into every successor not already on the path, then pops v.
func (w *pathWalker[V, E]) visit(v V) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.path = append(w.path, v)
	w.onPath[v] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, v)
	}()

	if v == w.dst {
		found := make([]V, len(w.path))
		copy(found, w.path)
		w.paths = append(w.paths, found)
		if w.opts.Limit > 0 && len(w.paths) >= w.opts.Limit {
			return errLimitReached
		}

		return nil
	}

	// edges on the path so far == len(path)-1
	if w.opts.MaxDepth >= 0 && len(w.path)-1 >= w.opts.MaxDepth {
		return nil
	}

	succ, err := w.successors(v)
	if err != nil {
		return err
	}
	for _, next := range succ {
		if w.onPath[next] {
			continue
		}
		if err = w.visit(next); err != nil {
			return err
		}
	}

	return nil
}

// successors returns the memoized, vertex-ordered successor list of v.
func (w *pathWalker[V, E]) successors(v V) ([]V, error) {
	if s, ok := w.succMem[v]; ok {
		return s, nil
	}
	s, err := w.graph.Successors(v)
	if err != nil {
		return nil, fmt.Errorf("dfs: Successors(%v): %w", v, err)
	}
	w.succMem[v] = s

	return s, nil
}
