// SPDX-License-Identifier: MIT
// Package: appledore/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is index 0, leaves are 1..n-1.
//   • Spokes are emitted hub→leaf in increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star S_n with one hub and n-1 leaves.
func Star[E any](n int) Constructor[E] {
	return func(g *core.Graph[string, E], cfg builderConfig, value ValueFn[E]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, 0, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(g, cfg, value, methodStar, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
