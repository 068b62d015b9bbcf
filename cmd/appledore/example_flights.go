// Flight routes: a Mixed graph where shuttle corridors run both ways and
// long-haul legs are one-way.
//
// Scenario:
//
//	NYC ═══ BOS ──► LON
//	 ║               │
//	PHL ◄────────────┘
//
// Upgrading the NYC═PHL shuttle to a one-way leg replaces the mirrored cell.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
)

func flightRoutes(w io.Writer) error {
	g, err := core.NewMixed[string, int]()
	if err != nil {
		return err
	}
	if err = g.AddVertex("NYC", "BOS", "PHL", "LON"); err != nil {
		return err
	}

	// 1) Shuttles (default undirected) and long-haul legs
	if err = g.AddEdge("NYC", "BOS", 190); err != nil {
		return err
	}
	if err = g.AddEdge("NYC", "PHL", 95); err != nil {
		return err
	}
	if err = g.AddEdge("BOS", "LON", 3265, core.WithEdgeDirected(true)); err != nil {
		return err
	}
	if err = g.AddEdge("LON", "PHL", 3540, core.WithEdgeDirected(true)); err != nil {
		return err
	}
	printEdges(w, g)

	routes, err := dfs.AllPaths(g, "PHL", "LON")
	if err != nil {
		return err
	}
	for _, r := range routes {
		fmt.Fprintf(w, "PHL → LON via %s\n", strings.Join(r, " → "))
	}

	// 2) Replace the PHL shuttle with a one-way NYC → PHL leg
	if err = g.AddEdge("NYC", "PHL", 95, core.WithEdgeDirected(true)); err != nil {
		return err
	}
	back, err := g.HasEdge("PHL", "NYC")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "after upgrade PHL → NYC exists: %t\n", back)

	st := g.Stats()
	fmt.Fprintf(w, "edges: %d (directed %d, undirected %d)\n", st.EdgeCount, st.DirectedEdgeCount, st.UndirectedEdgeCount)

	return nil
}

func printEdges[V comparable, E any](w io.Writer, g *core.Graph[V, E]) {
	for _, e := range g.Edges() {
		arrow := "═══"
		if e.Directed {
			arrow = "──►"
		}
		fmt.Fprintf(w, "  %v %s %v (%v)\n", e.From, arrow, e.To, e.Value)
	}
}
