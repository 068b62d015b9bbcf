// SPDX-License-Identifier: MIT
// Package: appledore/scenario
//
// scenario.go - scenario file model, decoding, defaults and validation.
//
// A scenario describes one graph (topology, vertices, edges with int64
// values) plus a list of queries to evaluate against it. Files are TOML or
// YAML; the format is chosen from the file extension.
//
// Load pipeline (strict order):
//   1. read → decode (unknown keys are rejected in both formats)
//   2. applyDefaults (name, query kinds, implicit vertices)
//   3. validate (every problem is reported, joined)

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/appledore/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a file extension or Format other than TOML/YAML.
	ErrUnknownFormat = errors.New("scenario: unknown file format")

	// ErrInvalidScenario indicates a decoded scenario that fails validation.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownQuery indicates a query kind the runner does not implement.
	ErrUnknownQuery = errors.New("scenario: unknown query kind")
)

// Format names a scenario encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// defaultName is used when neither the file nor its path provides a name.
const defaultName = "scenario"

// QueryKind selects the graph operation a Query evaluates.
type QueryKind string

const (
	QueryHasEdge   QueryKind = "has_edge"      // from, to
	QueryEdgeValue QueryKind = "edge_value"    // from, to
	QueryDegree    QueryKind = "degree"        // vertex
	QueryNeighbors QueryKind = "neighbors"     // vertex
	QueryPaths     QueryKind = "paths"         // from, to, optional max_depth / limit
	QueryHops      QueryKind = "shortest_hops" // from, to
	QueryEdges     QueryKind = "edges"
	QueryCycles    QueryKind = "cycles"
	QueryTopoSort  QueryKind = "topo_sort"
)

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name     string        `toml:"name" yaml:"name" json:"name"`
	Topology core.Topology `toml:"topology" yaml:"topology" json:"topology"`
	Vertices []string      `toml:"vertices" yaml:"vertices" json:"vertices,omitempty"`
	Edges    []EdgeDef     `toml:"edges" yaml:"edges" json:"edges,omitempty"`
	Queries  []Query       `toml:"queries" yaml:"queries" json:"queries,omitempty"`
}

// EdgeDef is one edge line. Directed may only be set on Mixed scenarios.
type EdgeDef struct {
	From     string `toml:"from" yaml:"from" json:"from"`
	To       string `toml:"to" yaml:"to" json:"to"`
	Value    int64  `toml:"value" yaml:"value" json:"value"`
	Directed *bool  `toml:"directed" yaml:"directed" json:"directed,omitempty"`
}

// Query is one operation to run against the built graph.
type Query struct {
	Kind     QueryKind `toml:"kind" yaml:"kind" json:"kind"`
	From     string    `toml:"from" yaml:"from" json:"from,omitempty"`
	To       string    `toml:"to" yaml:"to" json:"to,omitempty"`
	Vertex   string    `toml:"vertex" yaml:"vertex" json:"vertex,omitempty"`
	MaxDepth *int      `toml:"max_depth" yaml:"max_depth" json:"max_depth,omitempty"`
	Limit    int       `toml:"limit" yaml:"limit" json:"limit,omitempty"`
}

// String renders the query in a compact human form, e.g. "paths LAX→ATL".
func (q Query) String() string {
	switch {
	case q.From != "" || q.To != "":
		return fmt.Sprintf("%s %s→%s", q.Kind, q.From, q.To)
	case q.Vertex != "":
		return fmt.Sprintf("%s %s", q.Kind, q.Vertex)
	default:
		return string(q.Kind)
	}
}

// FormatFromPath maps a file extension (.toml, .yaml, .yml) to its Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}
}

// Load reads, decodes, defaults and validates the scenario file at path.
// A scenario without a name is named after the file (extension stripped).
func Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	if strings.TrimSpace(s.Name) == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err = s.prepare(); err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return s, nil
}

// Decode parses data in the given format, then applies defaults and validation.
func Decode(data []byte, format Format) (*Scenario, error) {
	s, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err = s.prepare(); err != nil {
		return nil, err
	}

	return s, nil
}

func decode(data []byte, format Format) (*Scenario, error) {
	var s Scenario

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}

			return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScenario, strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("Decode(%q): %w", format, ErrUnknownFormat)
	}

	return &s, nil
}

// prepare runs applyDefaults then validate.
func (s *Scenario) prepare() error {
	s.applyDefaults()

	return s.validate()
}

func (s *Scenario) applyDefaults() {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		s.Name = defaultName
	}

	for i := range s.Queries {
		s.Queries[i].Kind = QueryKind(strings.ToLower(strings.TrimSpace(string(s.Queries[i].Kind))))
	}

	// Edge endpoints missing from the vertex list are appended in first-seen order.
	known := make(map[string]struct{}, len(s.Vertices))
	for _, v := range s.Vertices {
		known[v] = struct{}{}
	}
	for _, e := range s.Edges {
		for _, v := range [2]string{e.From, e.To} {
			if _, ok := known[v]; ok || v == "" {
				continue
			}
			known[v] = struct{}{}
			s.Vertices = append(s.Vertices, v)
		}
	}
}

func (s *Scenario) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	if !s.Topology.Valid() {
		fail("topology %s", s.Topology)
	}
	for i, v := range s.Vertices {
		if strings.TrimSpace(v) == "" {
			fail("vertices[%d] is empty", i)
		}
	}
	for i, e := range s.Edges {
		if e.From == "" || e.To == "" {
			fail("edges[%d] needs from and to", i)
		}
		if e.Directed != nil && s.Topology != core.Mixed {
			fail("edges[%d] sets directed on a %s scenario", i, s.Topology)
		}
	}
	for i, q := range s.Queries {
		switch q.Kind {
		case QueryHasEdge, QueryEdgeValue, QueryPaths, QueryHops:
			if q.From == "" || q.To == "" {
				fail("queries[%d] (%s) needs from and to", i, q.Kind)
			}
		case QueryDegree, QueryNeighbors:
			if q.Vertex == "" {
				fail("queries[%d] (%s) needs vertex", i, q.Kind)
			}
		case QueryEdges, QueryCycles, QueryTopoSort:
		default:
			errs = append(errs, fmt.Errorf("%w: queries[%d] %q: %w", ErrInvalidScenario, i, q.Kind, ErrUnknownQuery))
		}
		if q.Limit < 0 {
			fail("queries[%d] limit %d < 0", i, q.Limit)
		}
	}

	return errors.Join(errs...)
}
