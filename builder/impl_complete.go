// SPDX-License-Identifier: MIT
// Package: appledore/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, exactly once as i→j.
//     On a Directed graph the reverse arc j→i is emitted as well,
//     so every topology yields the complete graph K_n.
//   • No self-loops.
//
// Complexity:
//   • Time: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete[E any](n int) Constructor[E] {
	return func(g *core.Graph[string, E], cfg builderConfig, value ValueFn[E]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, 0, n); err != nil {
			return err
		}

		both := g.Topology() == core.Directed
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, value, methodComplete, i, j); err != nil {
					return err
				}
				if both {
					if err := addEdge(g, cfg, value, methodComplete, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
