// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs on top of core.
//
// Every constructor (Path, Cycle, Complete, Star, Wheel) returns a
// Constructor[E] closure; BuildGraph creates a graph of the requested
// topology and applies the constructors in order:
//
//	g, err := builder.BuildGraph(core.Undirected, builder.ConstantValue(1),
//		[]builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle[int](5))
//
// Vertex IDs come from an IDFn (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
// SymbolNumberIDFn) selected through BuilderOption; edge payloads come from a
// ValueFn evaluated on the builder indices of the two endpoints.
//
// Guarantees:
//
//   - Same options and constructor order ⇒ identical graphs.
//   - Invalid sizes return ErrTooFewVertices wrapped with the constructor name.
//   - Option constructors panic on nil inputs; constructors never panic.
//   - Re-applying a constructor to the same graph is idempotent, since vertex
//     insertion ignores existing vertices and edge insertion replaces values.
package builder
