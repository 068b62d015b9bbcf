// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
	"github.com/stretchr/testify/require"
)

// buildAirports returns the directed flight network used across path tests
// (edge values are distances in miles).
func buildAirports(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g, err := core.New[string, int](core.Directed)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("LAX", "JFK", "DEN", "ATL", "ORD", "SFO", "MIA", "SEA"))

	flights := []struct {
		from, to string
		miles    int
	}{
		{"LAX", "ATL", 1945}, {"LAX", "JFK", 2475}, {"JFK", "ATL", 761},
		{"JFK", "DEN", 1631}, {"DEN", "ATL", 1199}, {"LAX", "SFO", 1843},
		{"SFO", "SEA", 2333}, {"SEA", "ORD", 1723}, {"ORD", "MIA", 2149},
		{"MIA", "ATL", 2171},
	}
	for _, f := range flights {
		require.NoError(t, g.AddEdge(f.from, f.to, f.miles))
	}

	return g
}

// requireValidPaths checks every structural property of a simple path.
func requireValidPaths[V comparable, E any](t *testing.T, g *core.Graph[V, E], src, dst V, paths [][]V) {
	t.Helper()
	for _, p := range paths {
		require.GreaterOrEqual(t, len(p), 2)
		require.Equal(t, src, p[0])
		require.Equal(t, dst, p[len(p)-1])
		seen := make(map[V]bool, len(p))
		for i, v := range p {
			require.False(t, seen[v], "vertex %v repeated in %v", v, p)
			seen[v] = true
			if i > 0 {
				ok, err := g.HasEdge(p[i-1], v)
				require.NoError(t, err)
				require.True(t, ok, "no edge %v→%v in %v", p[i-1], v, p)
			}
		}
	}
}

func TestAllPaths_Airports(t *testing.T) {
	g := buildAirports(t)

	paths, err := dfs.AllPaths(g, "LAX", "ATL")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"LAX", "ATL"},
		{"LAX", "JFK", "ATL"},
		{"LAX", "JFK", "DEN", "ATL"},
		{"LAX", "SFO", "SEA", "ORD", "MIA", "ATL"},
	}, paths)
	requireValidPaths(t, g, "LAX", "ATL", paths)

	// direction matters: nothing leaves ATL
	paths, err = dfs.AllPaths(g, "ATL", "LAX")
	require.NoError(t, err)
	require.NotNil(t, paths)
	require.Empty(t, paths)
}

func TestAllPaths_Limits(t *testing.T) {
	g := buildAirports(t)

	paths, err := dfs.AllPaths(g, "LAX", "ATL", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"LAX", "ATL"}, {"LAX", "JFK", "ATL"}}, paths)

	paths, err = dfs.AllPaths(g, "LAX", "ATL", dfs.WithLimit(3))
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.Equal(t, []string{"LAX", "JFK", "DEN", "ATL"}, paths[2])
}

func TestAllPaths_UndirectedTriangle(t *testing.T) {
	g, err := core.New[string, core.Unweighted](core.Undirected)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("A", "B", "C"))
	require.NoError(t, g.AddUnweightedEdge("A", "B"))
	require.NoError(t, g.AddUnweightedEdge("B", "C"))
	require.NoError(t, g.AddUnweightedEdge("C", "A"))

	paths, err := dfs.AllPaths(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B", "C"}, {"A", "C"}}, paths)
}

func TestAllPaths_CompleteGraphValidity(t *testing.T) {
	g, err := core.New[int, core.Unweighted](core.Undirected)
	require.NoError(t, err)
	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddUnweightedEdge(i, j))
		}
	}

	paths, err := dfs.AllPaths(g, 0, n-1)
	require.NoError(t, err)
	// K5: 1 direct + 3 via one + 6 via two + 6 via three intermediates
	require.Len(t, paths, 16)
	requireValidPaths(t, g, 0, n-1, paths)
}

func TestAllPaths_MixedScenario(t *testing.T) {
	g, err := core.NewMixed[string, int]()
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("A", "B", "C"))
	require.NoError(t, g.AddEdge("A", "B", 5, core.WithEdgeDirected(true)))
	require.NoError(t, g.AddEdge("B", "C", 10, core.WithEdgeDirected(false)))

	paths, err := dfs.AllPaths(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B", "C"}}, paths)

	paths, err = dfs.AllPaths(g, "C", "A")
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestAllPaths_EdgeCases(t *testing.T) {
	g := buildAirports(t)

	paths, err := dfs.AllPaths(g, "LAX", "LAX")
	require.NoError(t, err)
	require.NotNil(t, paths)
	require.Empty(t, paths)

	_, err = dfs.AllPaths(g, "XXX", "ATL")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dfs.AllPaths(g, "LAX", "XXX")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	var nilGraph *core.Graph[string, int]
	_, err = dfs.AllPaths(nilGraph, "A", "B")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.AllPaths(g, "LAX", "ATL", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAllPaths_DoesNotMutate(t *testing.T) {
	g := buildAirports(t)
	before := g.Edges()

	_, err := dfs.AllPaths(g, "LAX", "ATL")
	require.NoError(t, err)
	require.Equal(t, before, g.Edges())
}
