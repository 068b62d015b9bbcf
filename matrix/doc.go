// SPDX-License-Identifier: MIT

// Package matrix offers the dense cell storage behind appledore graphs.
//
// The matrix package provides:
//
//   - Cell, the per-(row,col) slot: an optional edge payload plus a
//     directed flag telling whether the edge is mirrored at (col,row).
//   - Store, a square row-major table of cells with O(1) At/Set/Clear and
//     an append-only Resize that relocates every stored cell when the extent
//     changes.
//
// Stores are best for dense or moderately sized graphs where O(V²) memory
// is acceptable in exchange for constant-time edge lookups.
//
// See package core for the graph engine built on top of Store.
package matrix
