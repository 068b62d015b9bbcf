// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// ExampleGraph demonstrates a mixed graph of flight routes.
func ExampleGraph() {
	// 1) Create a mixed graph: direction is decided per edge.
	g, _ := core.NewMixed[string, int]()

	// 2) Add cities and routes (minutes of flight time).
	_ = g.AddVertex("New York", "London", "Paris", "Tokyo")
	_ = g.AddEdge("New York", "London", 415, core.WithEdgeDirected(true))
	_ = g.AddEdge("London", "Paris", 90) // undirected by default
	_ = g.AddEdge("Paris", "Tokyo", 720, core.WithEdgeDirected(true))

	// 3) Query both directions.
	there, _ := g.HasEdge("New York", "London")
	back, _ := g.HasEdge("London", "New York")
	fmt.Println("NY→London:", there, "London→NY:", back)

	v, _ := g.EdgeValue("Paris", "London")
	fmt.Println("Paris–London minutes:", v)

	// 4) Missing edges are errors, not zero values.
	_, err := g.EdgeValue("Tokyo", "New York")
	fmt.Println(errors.Is(err, core.ErrEdgeNotFound))

	// Output:
	// NY→London: true London→NY: false
	// Paris–London minutes: 90
	// true
}

// ExampleGraph_Edges shows that an undirected edge is enumerated once.
func ExampleGraph_Edges() {
	g, _ := core.New[string, core.Unweighted](core.Undirected)
	_ = g.AddVertex("Alice", "Bob", "Charlie")
	_ = g.AddUnweightedEdge("Alice", "Bob")
	_ = g.AddUnweightedEdge("Charlie", "Alice")

	for _, e := range g.Edges() {
		fmt.Println(e.From, "-", e.To)
	}
	nbs, _ := g.Neighbors("Alice")
	fmt.Println(nbs)

	// Output:
	// Alice - Bob
	// Alice - Charlie
	// [Bob Charlie]
}
