// Package crystal models a periodic crystal: an ordered set of atoms
// with fractional coordinates inside a unit cell box, plus the bond
// graph connecting them.
//
// Atom indices are contiguous 0..N-1 and double as the bond graph's
// vertex identity (graph.Graph). Slicing a Crystal (Slice) or
// concatenating two (Concat) produces a new Crystal with consistent,
// relabeled topology — the building blocks the replacement engine uses
// for its final assembly step.
//
// Crystal values are treated as immutable inputs by the search and
// replacement engines; Mask/Unmask and RecomputeBonds (which rewrites
// the edge properties of the graph it is given) are the only in-place
// mutators, and every other transformation here returns a new value.
package crystal
