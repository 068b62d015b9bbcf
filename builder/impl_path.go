// SPDX-License-Identifier: MIT
// Package: appledore/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Edge payload: value(i-1, i).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) edges plus a single store resize of O(n²).
//   - Space: O(n) for the ID batch.

package builder

import (
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path[E any](n int) Constructor[E] {
	return func(g *core.Graph[string, E], cfg builderConfig, value ValueFn[E]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, 0, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, value, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
