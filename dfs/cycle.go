// SPDX-License-Identifier: MIT

// Package dfs implements cycle detection for directed, undirected and mixed core.Graphs.
// DetectCycles runs a three-color depth-first search and records one simple cycle per
// back edge. It honors each cell's own orientation, treats walking back over the
// undirected edge just used as trivial, keeps self-loops as one-vertex cycles, and
// reports every cycle in a canonical minimal rotation computed by Booth's algorithm.
// The final cycle list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V² + C·L)   (dense successor scans, C=#cycles, L=avg cycle length)
//   - Memory: O(V + C·L)
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/appledore/core"
)

// cycleFinder carries DetectCycles state for one graph.
type cycleFinder[V comparable, E any] struct {
	graph  *core.Graph[V, E]
	state  map[V]int
	path   []V
	cycles [][]V
}

// DetectCycles inspects graph g for simple cycles.
// Each cycle is closed (first vertex repeated at the end) and rotated so that its
// smallest vertex comes first; on Undirected graphs the smaller of the two
// traversal directions is chosen. Returns (true, cycles, nil) if any cycles are
// found and (false, nil, nil) otherwise. A nil graph is treated as cycle-free.
func DetectCycles[V comparable, E any](g *core.Graph[V, E]) (bool, [][]V, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	cf := &cycleFinder[V, E]{
		graph: g,
		state: make(map[V]int, len(verts)),
		path:  make([]V, 0, len(verts)),
	}

	for _, v := range verts {
		if cf.state[v] == White {
			if err := cf.visit(v, v, false); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	if len(cf.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(cf.cycles, func(a, b []V) int {
		if c := compareSeq(a[:min(len(a), len(b))], b[:min(len(a), len(b))], g.Compare); c != 0 {
			return c
		}

		return len(a) - len(b)
	})

	return true, cf.cycles, nil
}

// visit explores id; parent/hasParent identify the tree edge used to reach it.
func (cf *cycleFinder[V, E]) visit(id, parent V, hasParent bool) error {
	cf.state[id] = Gray
	cf.path = append(cf.path, id)

	succ, err := cf.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("Successors(%v): %w", id, err)
	}

	for _, nbr := range succ {
		if hasParent && nbr == parent {
			e, err := cf.graph.GetEdge(id, nbr)
			if err != nil {
				return err
			}
			if !e.Directed {
				// walking back over the undirected tree edge is not a cycle
				continue
			}
		}

		switch cf.state[nbr] {
		case White:
			if err = cf.visit(nbr, id, true); err != nil {
				return err
			}
		case Gray:
			cf.record(nbr)
		}
	}

	cf.path = cf.path[:len(cf.path)-1]
	cf.state[id] = Black

	return nil
}

// record extracts the cycle that starts at start on the current path,
// canonicalizes it and appends it unless already present.
func (cf *cycleFinder[V, E]) record(start V) {
	idx := slices.Index(cf.path, start)
	canon := cf.canonical(cf.path[idx:])
	for _, c := range cf.cycles {
		if slices.Equal(c, canon) {
			return
		}
	}
	cf.cycles = append(cf.cycles, canon)
}

// canonical returns the closed minimal rotation of base.
func (cf *cycleFinder[V, E]) canonical(base []V) []V {
	pick := minimalRotation(base, cf.graph.Compare)
	if cf.graph.Topology() == core.Undirected {
		rev := slices.Clone(base)
		slices.Reverse(rev)
		if rotB := minimalRotation(rev, cf.graph.Compare); compareSeq(rotB, pick, cf.graph.Compare) < 0 {
			pick = rotB
		}
	}

	return append(pick, pick[0])
}
