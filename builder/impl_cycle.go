// SPDX-License-Identifier: MIT
// Package: appledore/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices 0..n-1, edges i -> (i+1) mod n in increasing i.
//   - On a Directed graph the ring is oriented 0→1→…→n-1→0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle[E any](n int) Constructor[E] {
	return func(g *core.Graph[string, E], cfg builderConfig, value ValueFn[E]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, value, methodCycle, 0, n)
	}
}

// ring adds vertices first..first+n-1 and closes them into a cycle.
func ring[E any](g *core.Graph[string, E], cfg builderConfig, value ValueFn[E], method string, first, n int) error {
	if err := addVertices(g, cfg, method, first, n); err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		if err := addEdge(g, cfg, value, method, first+k, first+(k+1)%n); err != nil {
			return err
		}
	}

	return nil
}
