// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
)

// requireTopoOrder asserts that every directed edge u→v of g has u before v in order.
func requireTopoOrder(t *testing.T, g *core.Graph[string, int], order []string) {
	t.Helper()
	require.Len(t, order, g.VertexCount())
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		if !e.Directed {
			continue
		}
		require.Less(t, pos[e.From], pos[e.To], "%s→%s", e.From, e.To)
	}
}

func TestTopologicalSort_DAG(t *testing.T) {
	g := buildLetters(t, core.Directed, []string{"shirt", "tie", "jacket", "belt", "pants", "shoes", "socks"}, []edgeDef{
		{from: "shirt", to: "tie"}, {from: "tie", to: "jacket"}, {from: "shirt", to: "belt"},
		{from: "belt", to: "jacket"}, {from: "pants", to: "belt"}, {from: "pants", to: "shoes"},
		{from: "socks", to: "shoes"},
	})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	requireTopoOrder(t, g, order)
}

func TestTopologicalSort_MixedIgnoresUndirected(t *testing.T) {
	g := buildLetters(t, core.Mixed, []string{"A", "B", "C"}, []edgeDef{
		{from: "A", to: "B", directed: true},
		{from: "B", to: "C", directed: false},
		{from: "C", to: "A", directed: true},
	})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "A", "B"}, order)
	requireTopoOrder(t, g, order)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort[string, int](nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	und := buildLetters(t, core.Undirected, []string{"A", "B"}, []edgeDef{{from: "A", to: "B"}})
	_, err = dfs.TopologicalSort(und)
	require.ErrorIs(t, err, core.ErrWrongTopology)

	cyc := buildLetters(t, core.Directed, []string{"A", "B", "C"}, []edgeDef{
		{from: "A", to: "B"}, {from: "B", to: "C"}, {from: "C", to: "A"},
	})
	_, err = dfs.TopologicalSort(cyc)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	loop := buildLetters(t, core.Directed, []string{"A"}, []edgeDef{{from: "A", to: "A"}})
	_, err = dfs.TopologicalSort(loop)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dag := buildLetters(t, core.Directed, []string{"A", "B"}, []edgeDef{{from: "A", to: "B"}})
	_, err = dfs.TopologicalSort(dag, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
