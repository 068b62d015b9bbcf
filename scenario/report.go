// SPDX-License-Identifier: MIT
// Package: appledore/scenario
//
// report.go - human-readable rendering of a Report.

package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/appledore/core"
)

// WriteText renders r as plain text, one block per query.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "== %s (%s) run %s\n", r.Name, r.Stats.Topology, r.RunID)
	fmt.Fprintf(&b, "vertices: %s  edges: %s (directed %s, undirected %s)  elapsed: %s\n",
		humanize.Comma(int64(r.Stats.VertexCount)),
		humanize.Comma(int64(r.Stats.EdgeCount)),
		humanize.Comma(int64(r.Stats.DirectedEdgeCount)),
		humanize.Comma(int64(r.Stats.UndirectedEdgeCount)),
		r.Elapsed)

	for _, res := range r.Results {
		fmt.Fprintf(&b, "%s: ", res.Query)
		if res.Err != "" {
			fmt.Fprintf(&b, "error: %s\n", res.Err)
			continue
		}
		writeValue(&b, res.Value)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeValue(b *strings.Builder, v any) {
	switch val := v.(type) {
	case int64:
		fmt.Fprintln(b, humanize.Comma(val))
	case Degree:
		if val.In != nil && val.Out != nil {
			fmt.Fprintf(b, "in=%d out=%d ", *val.In, *val.Out)
		}
		fmt.Fprintf(b, "total=%d\n", val.Total)
	case []string:
		fmt.Fprintf(b, "[%s]\n", strings.Join(val, " "))
	case [][]string:
		fmt.Fprintf(b, "%s found\n", humanize.Comma(int64(len(val))))
		for _, seq := range val {
			fmt.Fprintf(b, "  %s\n", strings.Join(seq, " -> "))
		}
	case []core.Edge[string, int64]:
		fmt.Fprintf(b, "%s edges\n", humanize.Comma(int64(len(val))))
		for _, e := range val {
			arrow := "--"
			if e.Directed {
				arrow = "->"
			}
			fmt.Fprintf(b, "  %s %s %s (%s)\n", e.From, arrow, e.To, humanize.Comma(e.Value))
		}
	default:
		fmt.Fprintln(b, val)
	}
}
