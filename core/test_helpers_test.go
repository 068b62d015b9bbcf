// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for appledore/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep vertex names and weights as named constants (no magic values in test bodies).

package core_test

import (
	"testing"

	"github.com/katalvlaran/appledore/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1  = 1
	Weight2  = 2
	Weight3  = 3
	Weight5  = 5
	Weight7  = 7
	Weight10 = 10
)

// newGraph returns an empty graph of the given topology with vertices A..D.
func newGraph(t *testing.T, topology core.Topology) *core.Graph[string, int] {
	t.Helper()
	g, err := core.New[string, int](topology)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(VertexA, VertexB, VertexC, VertexD))

	return g
}

// mustHasEdge asserts HasEdge(src,dest) succeeds and equals want.
func mustHasEdge(t *testing.T, g *core.Graph[string, int], src, dest string, want bool) {
	t.Helper()
	ok, err := g.HasEdge(src, dest)
	require.NoError(t, err, "HasEdge(%s,%s)", src, dest)
	require.Equal(t, want, ok, "HasEdge(%s,%s)", src, dest)
}

// mustValue asserts EdgeValue(src,dest) succeeds and equals want.
func mustValue(t *testing.T, g *core.Graph[string, int], src, dest string, want int) {
	t.Helper()
	v, err := g.EdgeValue(src, dest)
	require.NoError(t, err, "EdgeValue(%s,%s)", src, dest)
	require.Equal(t, want, v, "EdgeValue(%s,%s)", src, dest)
}

// allTopologies lists every topology for table-driven tests.
var allTopologies = []core.Topology{core.Directed, core.Undirected, core.Mixed}
