// Fixture shapes: generated graphs and their simple-path counts.
//
// Scenario:
//   - Build P5, C5, K5, S5 and W5 with letter IDs and unit edge values.
//   - Count the simple paths between the first and last vertex of each.

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/appledore/builder"
	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
)

func fixtureShapes(w io.Writer) error {
	const n = 5
	shapes := []struct {
		name string
		cons builder.Constructor[int]
	}{
		{"path", builder.Path[int](n)},
		{"cycle", builder.Cycle[int](n)},
		{"complete", builder.Complete[int](n)},
		{"star", builder.Star[int](n)},
		{"wheel", builder.Wheel[int](n)},
	}

	for _, s := range shapes {
		g, err := builder.BuildGraph(core.Undirected, builder.ConstantValue(1),
			[]builder.BuilderOption{builder.WithSymbolIDs()}, s.cons)
		if err != nil {
			return err
		}
		paths, err := dfs.AllPaths(g, "A", "E")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-9s V=%d E=%-2d paths A→E: %d\n", s.name, g.VertexCount(), g.EdgeCount(), len(paths))
	}

	return nil
}
