// SPDX-License-Identifier: MIT

// Package dfs provides common helper functions used across cycle detection and
// topological sort: sequence comparison and Booth's minimal-rotation algorithm.
package dfs

import (
	"slices"
)

// Visitation colors shared by DetectCycles and TopologicalSort.
const (
	White = iota // unvisited
	Gray         // on the recursion stack
	Black        // fully explored
)

// compareSeq lexicographically compares two equal-length sequences with cmp.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(n).
func compareSeq[V any](a, b []V, cmp func(x, y V) int) int {
	for i := range a {
		if c := cmp(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

// minimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s under cmp. It returns a new slice of length len(s).
// Algorithm overview:
//  1. Work on the doubled sequence of length 2n.
//  2. Maintain an array f of failure links initialized to -1.
//  3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
//  4. After scanning, extract the rotation starting at index k.
//
// Time Complexity: O(n).
func minimalRotation[V any](s []V, cmp func(x, y V) int) []V {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := slices.Concat(s, s)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && cmp(doubled[j], doubled[k+i+1]) != 0 {
			if cmp(doubled[j], doubled[k+i+1]) < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if cmp(doubled[j], doubled[k+i+1]) != 0 { // mismatch with i == -1
			if cmp(doubled[j], doubled[k]) < 0 {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return slices.Clone(doubled[k : k+n])
}
