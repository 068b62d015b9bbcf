// SPDX-License-Identifier: MIT

// Package core defines the central Graph type, its vertex index, topology
// policy, and construction options.
//
// A Graph is a dense adjacency-matrix container: vertices carry any
// comparable payload with a total order, edges carry any payload E, and the
// topology (Directed, Undirected, Mixed) is fixed at construction.
//
// This file declares Topology, Edge, Unweighted, Option, EdgeOption,
// sentinel errors, and the New/NewFunc constructors.
//
// Errors:
//
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrWrongTopology        - directional query on an undirected graph.
//	ErrMixedEdgesNotAllowed - per-edge direction override outside Mixed topology.
//	ErrUnknownTopology      - topology value outside the defined set.
//	ErrNilCompare           - NewFunc called without a comparator.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/appledore/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex absent from the index.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation required an edge but the cell is empty.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrWrongTopology indicates InDegree/OutDegree on an Undirected graph.
	ErrWrongTopology = errors.New("core: operation undefined for topology")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override on a
	// graph whose topology is not Mixed.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrUnknownTopology indicates a Topology value outside Directed/Undirected/Mixed.
	ErrUnknownTopology = errors.New("core: unknown topology")

	// ErrNilCompare indicates NewFunc was given a nil comparator.
	ErrNilCompare = errors.New("core: nil vertex comparator")
)

// Topology decides whether an edge (u,v) also occupies the mirrored cell (v,u).
type Topology uint8

const (
	// Directed graphs never mirror: (u,v) says nothing about (v,u).
	Directed Topology = iota
	// Undirected graphs always mirror.
	Undirected
	// Mixed graphs decide per edge via WithEdgeDirected; undirected by default.
	Mixed
)

// String returns the lower-case topology name.
func (t Topology) String() string {
	switch t {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the defined topologies.
func (t Topology) Valid() bool { return t <= Mixed }

// ParseTopology maps a topology name ("directed", "undirected", "mixed")
// back to its value.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "directed":
		return Directed, nil
	case "undirected":
		return Undirected, nil
	case "mixed":
		return Mixed, nil
	default:
		return 0, fmt.Errorf("ParseTopology(%q): %w", s, ErrUnknownTopology)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("Topology.MarshalText(%d): %w", uint8(t), ErrUnknownTopology)
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; names are case-insensitive.
func (t *Topology) UnmarshalText(text []byte) error {
	v, err := ParseTopology(strings.ToLower(strings.TrimSpace(string(text))))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Unweighted is the edge payload of graphs whose edges carry no value.
type Unweighted struct{}

// Edge is one logical edge as reported by GetEdge and Edges.
//
// For an undirected edge From/To follow index order of the endpoints
// (the endpoint inserted first is From) when reported by Edges.
type Edge[V comparable, E any] struct {
	// From is the source vertex.
	From V `json:"from"`

	// To is the destination vertex.
	To V `json:"to"`

	// Value is the edge payload.
	Value E `json:"value"`

	// Directed is true for one-way edges, false for mirrored ones.
	Directed bool `json:"directed"`
}

// Option configures a Graph before creation.
type Option func(o *graphOptions)

type graphOptions struct {
	capacity int // expected vertex count, reserves index storage
}

// WithCapacity reserves index storage for n vertices.
// The cell store is still sized exactly to the current vertex count.
func WithCapacity(n int) Option {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*edgeOptions)

type edgeOptions struct {
	directed bool
	override bool
}

// WithEdgeDirected overrides the default orientation of one edge.
// Only legal on Mixed graphs; elsewhere AddEdge returns ErrMixedEdgesNotAllowed.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(o *edgeOptions) {
		o.directed = directed
		o.override = true
	}
}

// Graph is the dense adjacency-matrix graph engine.
//
// It is synchronous and holds no locks: callers sharing a Graph across
// goroutines must serialize mutations against each other and against reads.
// Every returned slice is an independent snapshot.
type Graph[V comparable, E any] struct {
	topology Topology         // immutable after construction
	compare  func(a, b V) int // total order over vertices
	index    *Index[V]        // vertex <-> dense index
	cells    *matrix.Store[E] // V×V edge cells, addressed by index
}

// New creates an empty Graph over an ordered vertex type using cmp.Compare.
//
// Errors:
//   - ErrUnknownTopology if topology is not Directed, Undirected or Mixed.
//
// Complexity: O(1) plus any WithCapacity reservation.
func New[V cmp.Ordered, E any](topology Topology, opts ...Option) (*Graph[V, E], error) {
	return NewFunc[V, E](cmp.Compare[V], topology, opts...)
}

// NewFunc creates an empty Graph whose vertices are ordered by compare.
// compare must be a total order consistent with ==: compare(a,b)==0 iff a==b.
//
// Errors:
//   - ErrNilCompare if compare is nil.
//   - ErrUnknownTopology if topology is not Directed, Undirected or Mixed.
func NewFunc[V comparable, E any](compare func(a, b V) int, topology Topology, opts ...Option) (*Graph[V, E], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	if !topology.Valid() {
		return nil, fmt.Errorf("NewFunc(%s): %w", topology, ErrUnknownTopology)
	}

	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	cells, err := matrix.NewStore[E](0)
	if err != nil {
		return nil, err
	}

	return &Graph[V, E]{
		topology: topology,
		compare:  compare,
		index:    NewIndex[V](o.capacity),
		cells:    cells,
	}, nil
}
