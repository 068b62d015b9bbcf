// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// following each cell's own orientation (core.Graph.Successors), with
// optional depth limiting and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/appledore/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E any] struct {
	graph   *core.Graph[V, E]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *BFSResult[V]
}

// BFS runs breadth-first search on g starting from start.
// Successors are expanded in the graph's comparator order, so Order and
// Parent are deterministic.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, and the context error (with the partial result) on cancellation.
func BFS[V comparable, E any](g *core.Graph[V, E], start V, opts ...Option) (*BFSResult[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("BFS(%v): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &BFSResult[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker[V, E]) enqueue(id V, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		succ, err := w.graph.Successors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: Successors(%v): %w", item.id, err)
		}
		for _, nbr := range succ {
			if !w.visited[nbr] {
				w.res.Parent[nbr] = item.id
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}
