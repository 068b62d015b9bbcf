// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/appledore/bfs"
	"github.com/katalvlaran/appledore/core"
)

// routers builds the undirected 2x3 router mesh
//
//	R1 ── R2 ── R3
//	│     │
//	R4 ── R5 ── R6
func routers(t *testing.T) *core.Graph[string, core.Unweighted] {
	t.Helper()
	g, err := core.New[string, core.Unweighted](core.Undirected)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("R1", "R2", "R3", "R4", "R5", "R6"))
	for _, l := range [][2]string{
		{"R1", "R2"}, {"R2", "R3"}, {"R1", "R4"},
		{"R4", "R5"}, {"R2", "R5"}, {"R5", "R6"},
	} {
		require.NoError(t, g.AddUnweightedEdge(l[0], l[1]))
	}

	return g
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(routers(t), "R1")
	require.NoError(t, err)
	require.Equal(t, []string{"R1", "R2", "R4", "R3", "R5", "R6"}, res.Order)
	require.Equal(t, 3, res.Depth["R6"])
	require.Equal(t, "R2", res.Parent["R5"])

	path, err := res.PathTo("R6")
	require.NoError(t, err)
	require.Equal(t, []string{"R1", "R2", "R5", "R6"}, path)

	path, err = res.PathTo("R1")
	require.NoError(t, err)
	require.Equal(t, []string{"R1"}, path)
}

func TestBFS_DirectedFollowsOrientation(t *testing.T) {
	g, err := core.New[int, int](core.Directed)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(1, 2, 3))
	require.NoError(t, g.AddEdge(2, 1, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Order)

	_, err = res.PathTo(3)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(routers(t), "R1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"R1", "R2", "R4"}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	g := routers(t)

	_, err := bfs.BFS[string, core.Unweighted](nil, "R1")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, "R9")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = bfs.BFS(g, "R1", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "R1", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
