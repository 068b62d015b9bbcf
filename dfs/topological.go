// SPDX-License-Identifier: MIT

// Package dfs provides topological sorting of directed core.Graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// Undirected edges of a Mixed graph impose no order and are skipped.
// If the directed edges contain a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V²) on the dense store
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// ErrCycleDetected indicates that the directed edges of the graph form a cycle.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable, E any] struct {
	graph *core.Graph[V, E] // the graph being sorted
	ctx   context.Context   // cancellation
	state map[V]int         // visitation state: White, Gray, Black
	order []V               // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are taken in vertex insertion order and successors in the graph's
// vertex order, so the result is deterministic.
// Of the options only WithContext is honored.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - core.ErrWrongTopology if g is Undirected.
//   - ErrCycleDetected if a directed cycle (including a self-loop) exists.
//   - ErrNeighborFetch wrapping any successor lookup failure.
func TopologicalSort[V comparable, E any](g *core.Graph[V, E], opts ...Option) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Topology() == core.Undirected {
		return nil, fmt.Errorf("dfs: TopologicalSort on %s graph: %w", g.Topology(), core.ErrWrongTopology)
	}

	dopts := resolveOptions(opts)
	verts := g.Vertices()
	sorter := &topoSorter[V, E]{
		graph: g,
		ctx:   dopts.Ctx,
		state: make(map[V]int, len(verts)),
		order: make([]V, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter[V, E]) visit(id V) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("TopologicalSort at %v: %w", id, ErrCycleDetected)
	case Black:
		return nil
	}
	t.state[id] = Gray

	succ, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	mixed := t.graph.Topology() == core.Mixed
	for _, nid := range succ {
		if mixed {
			e, err := t.graph.GetEdge(id, nid)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
			}
			if !e.Directed {
				continue
			}
		}
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
