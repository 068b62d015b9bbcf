// SPDX-License-Identifier: MIT
// Package: appledore/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = hub + Cₙ₋₁: index 0 is the hub, indices 1..n-1 form the rim.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Rim edges are emitted first (as Cycle would), then spokes hub→rim
//     in increasing rim index.
//   • On a Directed graph each spoke also gets the reverse arc rim→hub,
//     keeping the hub reachable from the rim.
//
// Complexity:
//   • Time: O(n) edges plus a single store resize.

package builder

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel[E any](n int) Constructor[E] {
	return func(g *core.Graph[string, E], cfg builderConfig, value ValueFn[E]) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodWheel, 0, 1); err != nil {
			return err
		}
		if err := ring(g, cfg, value, methodWheel, 1, n-1); err != nil {
			return err
		}

		both := g.Topology() == core.Directed
		for k := 1; k < n; k++ {
			if err := addEdge(g, cfg, value, methodWheel, 0, k); err != nil {
				return err
			}
			if both {
				if err := addEdge(g, cfg, value, methodWheel, k, 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
