// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Degree and neighborhood queries over the cell store.
//
// Degree policy:
//   - InDegree/OutDegree count populated cells in the vertex column/row.
//     On Undirected graphs they return ErrWrongTopology (no silent fallback).
//     On Mixed graphs an undirected edge counts once in each.
//   - TotalDegree counts distinct incident logical edges: directed edges in
//     either direction, plus each undirected edge once. A directed self-loop
//     counts twice (in + out), an undirected self-loop once.
//
// Determinism:
//   - Neighbors/Successors return vertices sorted by the graph's comparator.
package core

import (
	"fmt"
	"slices"
)

// InDegree returns the number of edges entering v.
//
// Errors:
//   - ErrVertexNotFound if v is unknown.
//   - ErrWrongTopology on Undirected graphs, where direction is undefined.
//
// Complexity: O(V).
func (g *Graph[V, E]) InDegree(v V) (int, error) {
	vi, err := g.resolve(methodInDegree, v)
	if err != nil {
		return 0, err
	}
	if g.topology == Undirected {
		return 0, fmt.Errorf("%s(%v) on %s graph: %w", methodInDegree, v, g.topology, ErrWrongTopology)
	}

	n := g.index.Len()
	count := 0
	for src := 0; src < n; src++ {
		if g.at(src, vi).Present {
			count++
		}
	}

	return count, nil
}

// OutDegree returns the number of edges leaving v.
//
// Errors:
//   - ErrVertexNotFound if v is unknown.
//   - ErrWrongTopology on Undirected graphs.
//
// Complexity: O(V).
func (g *Graph[V, E]) OutDegree(v V) (int, error) {
	vi, err := g.resolve(methodOutDegree, v)
	if err != nil {
		return 0, err
	}
	if g.topology == Undirected {
		return 0, fmt.Errorf("%s(%v) on %s graph: %w", methodOutDegree, v, g.topology, ErrWrongTopology)
	}

	n := g.index.Len()
	count := 0
	for dest := 0; dest < n; dest++ {
		if g.at(vi, dest).Present {
			count++
		}
	}

	return count, nil
}

// TotalDegree returns the number of distinct logical edges incident to v.
//
// Implementation:
//   - Stage 1: Resolve v (ErrVertexNotFound).
//   - Stage 2: For every column j: count the row cell (v,j) if present, and
//     the column cell (j,v) only if it is directed (an undirected (j,v) is the
//     mirror of (v,j) and is already counted).
//
// Behavior highlights:
//   - Directed graphs: equals InDegree + OutDegree.
//   - Undirected graphs: equals the number of incident edges, no double counting.
//
// Complexity: O(V).
func (g *Graph[V, E]) TotalDegree(v V) (int, error) {
	vi, err := g.resolve(methodTotalDegree, v)
	if err != nil {
		return 0, err
	}

	n := g.index.Len()
	count := 0
	for j := 0; j < n; j++ {
		if g.at(vi, j).Present {
			count++
		}
		if in := g.at(j, vi); in.Present && in.Directed {
			count++
		}
	}

	return count, nil
}

// Neighbors returns the vertices adjacent to v: every vertex reachable by one
// outgoing edge, and on Undirected graphs also by one incoming edge.
// The result is deduplicated and sorted by the graph's comparator.
//
// Errors:
//   - ErrVertexNotFound if v is unknown.
//
// Complexity: O(V + d·log d) where d is the result size.
func (g *Graph[V, E]) Neighbors(v V) ([]V, error) {
	vi, err := g.resolve(methodNeighbors, v)
	if err != nil {
		return nil, err
	}

	n := g.index.Len()
	out := make([]V, 0, defaultReserve)
	for j := 0; j < n; j++ {
		if g.at(vi, j).Present || (g.topology == Undirected && g.at(j, vi).Present) {
			out = append(out, g.index.At(j))
		}
	}

	return g.sortUnique(out), nil
}

// Successors returns the targets of all edges leaving v (directed cells and
// both ends of mirrored ones), sorted by the graph's comparator.
// This is the edge-existence relation path search walks.
//
// Errors:
//   - ErrVertexNotFound if v is unknown.
//
// Complexity: O(V + d·log d).
func (g *Graph[V, E]) Successors(v V) ([]V, error) {
	vi, err := g.resolve(methodSuccessors, v)
	if err != nil {
		return nil, err
	}

	n := g.index.Len()
	out := make([]V, 0, defaultReserve)
	for j := 0; j < n; j++ {
		if g.at(vi, j).Present {
			out = append(out, g.index.At(j))
		}
	}

	return g.sortUnique(out), nil
}

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// sortUnique sorts vs by the graph comparator and drops duplicates in place.
func (g *Graph[V, E]) sortUnique(vs []V) []V {
	slices.SortFunc(vs, g.compare)

	return slices.CompactFunc(vs, func(a, b V) bool { return g.compare(a, b) == 0 })
}
