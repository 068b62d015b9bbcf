// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used by the cell store.
// Accessors return these sentinels (wrapped with coordinates) and tests check
// them via errors.Is. No accessor panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when the
// caller needs coordinates; errors.Is still matches.

var (
	// ErrInvalidDimensions indicates that a requested extent is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	// Public indexers (At/Set/Clear) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShrink indicates a Resize request below the current extent.
	// The store is append-only: vertices are never removed.
	ErrShrink = errors.New("matrix: store cannot shrink")

	// ErrNilStore indicates that a nil *Store receiver was used.
	ErrNilStore = errors.New("matrix: nil receiver")
)
