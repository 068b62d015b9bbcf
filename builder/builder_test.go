// SPDX-License-Identifier: MIT
// Package builder_test verifies the fixture constructors of appledore/builder.

package builder_test

import (
	"testing"

	"github.com/katalvlaran/appledore/builder"
	"github.com/katalvlaran/appledore/core"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_Shapes(t *testing.T) {
	cases := []struct {
		name      string
		topology  core.Topology
		cons      builder.Constructor[int]
		vertices  int
		edgeCount int
	}{
		{"path/undirected", core.Undirected, builder.Path[int](5), 5, 4},
		{"path/directed", core.Directed, builder.Path[int](5), 5, 4},
		{"cycle/undirected", core.Undirected, builder.Cycle[int](6), 6, 6},
		{"cycle/mixed", core.Mixed, builder.Cycle[int](3), 3, 3},
		{"complete/undirected", core.Undirected, builder.Complete[int](5), 5, 10},
		{"complete/directed", core.Directed, builder.Complete[int](4), 4, 12},
		{"complete/single", core.Undirected, builder.Complete[int](1), 1, 0},
		{"star/undirected", core.Undirected, builder.Star[int](5), 5, 4},
		{"wheel/undirected", core.Undirected, builder.Wheel[int](5), 5, 8},
		{"wheel/directed", core.Directed, builder.Wheel[int](5), 5, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.topology, builder.ConstantValue(1), nil, tc.cons)
			require.NoError(t, err)
			require.Equal(t, tc.topology, g.Topology())
			require.Equal(t, tc.vertices, g.VertexCount())
			require.Equal(t, tc.edgeCount, g.EdgeCount())
		})
	}
}

func TestBuildGraph_TooFewVertices(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor[int]
	}{
		{"path", builder.Path[int](1)},
		{"cycle", builder.Cycle[int](2)},
		{"complete", builder.Complete[int](0)},
		{"star", builder.Star[int](1)},
		{"wheel", builder.Wheel[int](3)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(core.Undirected, nil, nil, tc.cons)
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph[int](core.Undirected, nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(core.Topology(42), nil, nil, builder.Path[int](3))
	require.ErrorIs(t, err, core.ErrUnknownTopology)
}

func TestBuildGraph_ValueFnAndIDs(t *testing.T) {
	value := func(from, to int) int { return from*10 + to }
	g, err := builder.BuildGraph(core.Directed, value,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle[int](4))
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	v, err := g.EdgeValue("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = g.EdgeValue("D", "A")
	require.NoError(t, err)
	require.Equal(t, 30, v)

	ok, err := g.HasEdge("B", "A")
	require.NoError(t, err)
	require.False(t, ok, "directed cycle has a single orientation")
}

func TestBuildGraph_ZeroValueDefault(t *testing.T) {
	g, err := builder.BuildGraph[int](core.Undirected, nil, nil, builder.Star[int](3))
	require.NoError(t, err)

	v, err := g.EdgeValue("2", "0")
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestBuildGraph_WheelHub(t *testing.T) {
	g, err := builder.BuildGraph(core.Undirected, builder.ConstantValue(1),
		[]builder.BuilderOption{builder.WithSymbNumb("v")},
		builder.Wheel[int](6))
	require.NoError(t, err)

	deg, err := g.TotalDegree("v0")
	require.NoError(t, err)
	require.Equal(t, 5, deg)

	for _, rim := range []string{"v1", "v2", "v3", "v4", "v5"} {
		deg, err = g.TotalDegree(rim)
		require.NoError(t, err)
		require.Equal(t, 3, deg, rim)
	}
}

func TestBuildGraph_ComposedConstructorsIdempotent(t *testing.T) {
	g, err := builder.BuildGraph(core.Undirected, builder.ConstantValue(2), nil,
		builder.Path[int](4), builder.Path[int](4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestIDSchemes(t *testing.T) {
	require.Equal(t, "0", builder.DefaultIDFn(0))
	require.Equal(t, "42", builder.DefaultIDFn(42))
	require.Equal(t, "Z", builder.SymbolIDFn(25))
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	require.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	require.Equal(t, "BA", builder.ExcelColumnIDFn(52))
	require.Equal(t, "n7", builder.SymbolNumberIDFn("n")(7))

	require.Panics(t, func() { builder.SymbolIDFn(26) })
	require.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
}
