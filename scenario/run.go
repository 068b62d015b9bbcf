// SPDX-License-Identifier: MIT
// Package: appledore/scenario
//
// run.go - building the graph and evaluating queries.
//
// Contract:
//   - Build never partially succeeds: any vertex/edge error aborts.
//   - Run records per-query failures in Result.Err and keeps going;
//     only build failures and context cancellation abort the run.

package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/appledore/bfs"
	"github.com/katalvlaran/appledore/core"
	"github.com/katalvlaran/appledore/dfs"
)

// Graph is the concrete graph type scenarios build.
type Graph = core.Graph[string, int64]

// Degree is the value of a degree query. In and Out are omitted on
// Undirected graphs, where only the total degree is defined.
type Degree struct {
	In    *int `json:"in,omitempty"`
	Out   *int `json:"out,omitempty"`
	Total int  `json:"total"`
}

// Result pairs a query with its value or error message.
type Result struct {
	Query Query  `json:"query"`
	Value any    `json:"value,omitempty"`
	Err   string `json:"error,omitempty"`
}

// Report is the outcome of one scenario run.
type Report struct {
	RunID   string          `json:"run_id"`
	Name    string          `json:"name"`
	Stats   core.GraphStats `json:"stats"`
	Results []Result        `json:"results"`
	Elapsed time.Duration   `json:"elapsed_ns"`
}

// Build creates the scenario graph: all vertices in one batch, then edges in file order.
func (s *Scenario) Build() (*Graph, error) {
	g, err := core.New[string, int64](s.Topology, core.WithCapacity(len(s.Vertices)))
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", s.Name, err)
	}
	if err = g.AddVertex(s.Vertices...); err != nil {
		return nil, fmt.Errorf("Build(%s): %w", s.Name, err)
	}

	for i, e := range s.Edges {
		var opts []core.EdgeOption
		if e.Directed != nil {
			opts = append(opts, core.WithEdgeDirected(*e.Directed))
		}
		if err = g.AddEdge(e.From, e.To, e.Value, opts...); err != nil {
			return nil, fmt.Errorf("Build(%s): edges[%d]: %w", s.Name, i, err)
		}
	}

	return g, nil
}

// Run builds the graph and evaluates every query in order.
// A nil logger discards log output.
func (s *Scenario) Run(ctx context.Context, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	start := time.Now()
	report := &Report{RunID: uuid.NewString(), Name: s.Name}
	logger = logger.With("scenario", s.Name, "run_id", report.RunID)

	g, err := s.Build()
	if err != nil {
		logger.Error("build failed", "error", err)
		return nil, err
	}
	report.Stats = *g.Stats()
	logger.Debug("graph built",
		"topology", g.Topology(),
		"vertices", report.Stats.VertexCount,
		"edges", report.Stats.EdgeCount)

	report.Results = make([]Result, 0, len(s.Queries))
	for _, q := range s.Queries {
		if err = ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}

		res := Result{Query: q}
		value, qerr := Evaluate(ctx, g, q)
		if qerr != nil {
			res.Err = qerr.Error()
			logger.Warn("query failed", "query", q.String(), "error", qerr)
		} else {
			res.Value = value
			logger.Debug("query done", "query", q.String())
		}
		report.Results = append(report.Results, res)
	}

	report.Elapsed = time.Since(start)
	logger.Info("scenario finished", "queries", len(report.Results), "elapsed", report.Elapsed)

	return report, nil
}

// Evaluate runs a single query against g. The value's dynamic type depends on
// the kind: bool, int64, Degree, []string, [][]string or []core.Edge[string, int64].
func Evaluate(ctx context.Context, g *Graph, q Query) (any, error) {
	switch q.Kind {
	case QueryHasEdge:
		return g.HasEdge(q.From, q.To)
	case QueryEdgeValue:
		return g.EdgeValue(q.From, q.To)
	case QueryDegree:
		return degree(g, q.Vertex)
	case QueryNeighbors:
		return g.Neighbors(q.Vertex)
	case QueryPaths:
		opts := []dfs.Option{dfs.WithContext(ctx)}
		if q.MaxDepth != nil {
			opts = append(opts, dfs.WithMaxDepth(*q.MaxDepth))
		}
		if q.Limit > 0 {
			opts = append(opts, dfs.WithLimit(q.Limit))
		}

		return dfs.AllPaths(g, q.From, q.To, opts...)
	case QueryHops:
		if !g.HasVertex(q.To) {
			return nil, fmt.Errorf("Evaluate(%s): %q: %w", q.Kind, q.To, core.ErrVertexNotFound)
		}
		res, err := bfs.BFS(g, q.From, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}

		return res.PathTo(q.To)
	case QueryEdges:
		return g.Edges(), nil
	case QueryCycles:
		_, cycles, err := dfs.DetectCycles(g)
		if cycles == nil {
			cycles = [][]string{}
		}

		return cycles, err
	case QueryTopoSort:
		return dfs.TopologicalSort(g, dfs.WithContext(ctx))
	default:
		return nil, fmt.Errorf("Evaluate(%q): %w", q.Kind, ErrUnknownQuery)
	}
}

func degree(g *Graph, v string) (Degree, error) {
	total, err := g.TotalDegree(v)
	if err != nil {
		return Degree{}, err
	}
	d := Degree{Total: total}
	if g.Topology() == core.Undirected {
		return d, nil
	}

	in, err := g.InDegree(v)
	if err != nil {
		return Degree{}, err
	}
	out, err := g.OutDegree(v)
	if err != nil {
		return Degree{}, err
	}
	d.In, d.Out = &in, &out

	return d, nil
}
