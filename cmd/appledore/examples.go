package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// example is one built-in demonstration.
type example struct {
	name string
	run  func(w io.Writer) error
}

var examples = []example{
	{name: "airports", run: airportRoutes},
	{name: "social", run: socialNetwork},
	{name: "flights", run: flightRoutes},
	{name: "fixtures", run: fixtureShapes},
}

func exampleNames() []string {
	names := make([]string, len(examples))
	for i, ex := range examples {
		names[i] = ex.name
	}

	return names
}

// runExamples runs the named example, or every example for "all".
func runExamples(name string, w io.Writer) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ex := range examples {
		if name != "all" && name != ex.name {
			continue
		}
		fmt.Fprintf(w, "## %s\n", ex.name)
		if err := ex.run(w); err != nil {
			return fmt.Errorf("example %s: %w", ex.name, err)
		}
		fmt.Fprintln(w)
	}
	if name != "all" && !slices.Contains(exampleNames(), name) {
		return fmt.Errorf("unknown example %q (want %s or all)", name, strings.Join(exampleNames(), ", "))
	}

	return nil
}
