// Package appledore is an in-memory graph library built on a dense
// adjacency matrix.
//
// Every vertex gets a stable row/column index in insertion order, and every
// ordered pair of vertices owns one cell of a flat row-major matrix. Adding a
// vertex grows the matrix and relocates existing cells so that no edge is
// lost or moved to the wrong pair.
//
// Graphs come in three topologies:
//
//	Directed   every edge is an arc src→dest
//	Undirected every edge is stored in both mirror cells
//	Mixed      each edge chooses its own orientation
//
// The module is organized into small subpackages:
//
//	matrix/   generic dense cell store with resize relocation
//	core/     Graph[V, E]: vertex index, edges, degrees, neighbors, clone
//	dfs/      DFS, AllPaths (every simple path), cycles, topological sort
//	bfs/      breadth-first search with fewest-hop paths
//	builder/  deterministic fixture graphs (path, cycle, complete, star, wheel)
//	scenario/ TOML/YAML scenario files: build a graph, run queries, report
//	cmd/appledore CLI that runs scenarios and the bundled walkthroughs
//
// Quick example:
//
//	    LAX──►JFK──►ATL
//	     │          ▲
//	     └──────────┘
//
//	g, _ := core.New[string, int](core.Directed)
//	_ = g.AddVertex("LAX", "JFK", "ATL")
//	_ = g.AddEdge("LAX", "JFK", 2475)
//	_ = g.AddEdge("JFK", "ATL", 760)
//	_ = g.AddEdge("LAX", "ATL", 1946)
//	paths, _ := dfs.AllPaths(g, "LAX", "ATL")
//	// [[LAX ATL] [LAX JFK ATL]]
//
// Graphs are not safe for concurrent mutation; callers that share one
// across goroutines must synchronize access themselves.
package appledore
