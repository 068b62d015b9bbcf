// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first search over
// core.Graph: single-source and forest traversal, and all-simple-paths
// enumeration, with cancellation, depth limiting and result limiting.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist
	// in the graph. It matches core.ErrVertexNotFound under errors.Is.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrVertexNotFound)
)

// Option configures optional behavior of DFS and AllPaths.
type Option func(*Options)

// Options holds configurable parameters shared by DFS and AllPaths.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// MaxDepth, if non-negative, limits the number of edges followed from the
	// start vertex. A depth of 0 visits only the start vertex. Default -1 (no limit).
	MaxDepth int

	// Limit, if positive, stops AllPaths after that many paths. Default 0 (no limit).
	Limit int

	// FullTraversal, if true, makes DFS restart from every unvisited vertex,
	// covering disconnected components. Ignored by AllPaths.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no depth limit,
// no path limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxDepth:      -1,
		Limit:         0,
		FullTraversal: false,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits search depth to limit edges.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLimit returns an Option that stops AllPaths after n paths.
// Non-positive n means no limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithFullTraversal returns an Option that enables forest traversal in DFS.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// resolveOptions applies opts over DefaultOptions.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[V comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its distance (#edges) from the root of its tree.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// Tree roots do not appear in this map.
	Parent map[V]V

	// Visited flags which vertices were reached during the traversal.
	Visited map[V]bool
}
