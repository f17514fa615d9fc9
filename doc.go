// Package poremod performs chemical find-and-replace on periodic
// crystal graphs: it locates every occurrence of a query moiety as a
// subgraph of a parent crystal — respecting atomic species and bond
// topology across unit-cell boundaries — and substitutes a
// geometrically aligned copy of a replacement moiety at chosen
// occurrences, producing a new crystal with consistent bonds and
// coordinates.
//
// The work is organized under focused subpackages:
//
//	graph/        — vertex-labeled undirected bond graphs
//	geometry/     — box matrices, fractional/Cartesian conversion, PBC
//	crystal/      — atoms, bond graph, unit cell; slicing and concatenation
//	isomorphism/  — Ullmann subgraph/graph isomorphism enumeration
//	search/       — grouping isomorphisms into locations and orientations
//	align/        — orthogonal Procrustes rigid-body alignment
//	replace/      — scheme resolution and the replacement engine
//
// This package is the thin facade over them: SubstructureSearch,
// SubstructureReplace, the composed Replace convenience, and a
// Contains predicate. It contains no algorithms of its own, only
// wiring.
//
// Quick example, swapping every matched moiety for another:
//
//	s, err := poremod.SubstructureSearch(query, parent, false)
//	if err != nil { ... }
//	xtal, err := poremod.SubstructureReplace(s, replacement,
//		replace.WithName("functionalized"))
//
// All operations are pure: inputs are treated as read-only (the engine
// deep-copies before mutating tags or coordinates) and outputs are
// freshly allocated.
package poremod
