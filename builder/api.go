// SPDX-License-Identifier: MIT
// Package: appledore/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(topology, valueFn, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble fixtures deterministically.
//   - WithIDScheme(...) for human-readable vertex IDs.
//   - Constructors emit each edge once as lower index → higher index; the graph
//     topology decides whether it is mirrored.

package builder

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// ValueFn computes the payload of the edge between the vertices with
// builder indices from and to. It must be pure.
type ValueFn[E any] func(from, to int) E

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor[E any] func(g *core.Graph[string, E], cfg builderConfig, value ValueFn[E]) error

// BuildGraph creates a new graph of the given topology, resolves the builder
// configuration from bopts, and applies all constructors in order.
// A nil valueFn writes the zero value of E on every edge.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - core.ErrUnknownTopology for an invalid topology.
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors (ErrTooFewVertices, ...).
func BuildGraph[E any](topology core.Topology, valueFn ValueFn[E], bopts []BuilderOption, cons ...Constructor[E]) (*core.Graph[string, E], error) {
	g, err := core.New[string, E](topology)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	if valueFn == nil {
		valueFn = zeroValue[E]
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg, valueFn); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ConstantValue returns a ValueFn writing v on every edge.
func ConstantValue[E any](v E) ValueFn[E] {
	return func(int, int) E { return v }
}

func zeroValue[E any](int, int) E {
	var zero E

	return zero
}

// addVertices inserts ids idFn(first)..idFn(first+n-1) in one store resize.
func addVertices[E any](g *core.Graph[string, E], cfg builderConfig, method string, first, n int) error {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(first + i)
	}
	if err := g.AddVertex(ids...); err != nil {
		return fmt.Errorf("%s: AddVertex: %w", method, err)
	}

	return nil
}

// addEdge writes the edge between builder indices i and j.
func addEdge[E any](g *core.Graph[string, E], cfg builderConfig, value ValueFn[E], method string, i, j int) error {
	from, to := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(from, to, value(i, j)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, from, to, err)
	}

	return nil
}
