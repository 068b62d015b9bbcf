// Airport routes: every way to fly from Los Angeles to Atlanta.
//
// Scenario:
//   - Direct flights: LAX→ATL, LAX→JFK, JFK→ATL, JFK→DEN, DEN→ATL,
//     LAX→SFO, SFO→SEA, SEA→ORD, ORD→MIA, MIA→ATL.
//   - Expectation: four itineraries, the longest through the west coast.
//
// Vertices are Airport structs ordered by IATA code; edge values are miles.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
)

// Airport is a struct vertex; the graph orders it by Code.
type Airport struct {
	Code string
	City string
}

func airportRoutes(w io.Writer) error {
	// 1) Catalog
	var (
		lax = Airport{"LAX", "Los Angeles"}
		jfk = Airport{"JFK", "New York"}
		den = Airport{"DEN", "Denver"}
		atl = Airport{"ATL", "Atlanta"}
		ord = Airport{"ORD", "Chicago"}
		sfo = Airport{"SFO", "San Francisco"}
		mia = Airport{"MIA", "Miami"}
		sea = Airport{"SEA", "Seattle"}
	)
	byCode := func(a, b Airport) int { return strings.Compare(a.Code, b.Code) }

	g, err := core.NewFunc[Airport, int](byCode, core.Directed)
	if err != nil {
		return err
	}
	if err = g.AddVertex(lax, jfk, den, atl, ord, sfo, mia, sea); err != nil {
		return err
	}

	// 2) Direct flights
	for _, f := range []struct {
		from, to Airport
		miles    int
	}{
		{lax, atl, 1945}, {lax, jfk, 2475}, {jfk, atl, 761},
		{jfk, den, 1631}, {den, atl, 1199}, {lax, sfo, 1843},
		{sfo, sea, 2333}, {sea, ord, 1723}, {ord, mia, 2149},
		{mia, atl, 2171},
	} {
		if err = g.AddEdge(f.from, f.to, f.miles); err != nil {
			return err
		}
	}

	// 3) Every itinerary, with its total distance
	paths, err := dfs.AllPaths(g, lax, atl)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d itineraries %s → %s:\n", len(paths), lax.City, atl.City)
	for _, p := range paths {
		codes := make([]string, len(p))
		miles := 0
		for i, a := range p {
			codes[i] = a.Code
			if i > 0 {
				leg, err := g.EdgeValue(p[i-1], a)
				if err != nil {
					return err
				}
				miles += leg
			}
		}
		fmt.Fprintf(w, "  %-28s %6s mi\n", strings.Join(codes, " → "), humanize.Comma(int64(miles)))
	}

	// 4) Hub statistics
	in, err := g.InDegree(atl)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s receives %d direct flights\n", atl.Code, in)

	return nil
}
