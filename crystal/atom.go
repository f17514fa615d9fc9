package crystal

import (
	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/graph"
)

// Atom is a single species at a fractional position. Masked marks it
// as an R-group atom: during replacement, masked query atoms are not
// required to have a counterpart in the replacement moiety.
type Atom struct {
	Species string
	Masked  bool
	Frac    geometry.Vec3
}

// AtomSet is an ordered, stable sequence of atoms; position defines
// vertex identity in the owning Crystal's bond graph.
type AtomSet []Atom

// Labels derives the graph.Label sequence backing the bond graph from
// the atom set's current Species/Masked fields.
func (as AtomSet) Labels() []graph.Label {
	out := make([]graph.Label, len(as))
	for i, a := range as {
		out[i] = graph.Label{Species: a.Species, Masked: a.Masked}
	}

	return out
}

// FracCoords returns the fractional coordinates in atom order.
func (as AtomSet) FracCoords() []geometry.Vec3 {
	out := make([]geometry.Vec3, len(as))
	for i, a := range as {
		out[i] = a.Frac
	}

	return out
}

// Clone returns an independent copy of the atom set.
func (as AtomSet) Clone() AtomSet {
	return append(AtomSet(nil), as...)
}

// UnmaskedIndices returns the indices of atoms not carrying the mask
// tag, in ascending order. The moiety loader places masked atoms last,
// but this helper does not assume any particular ordering, it just
// filters.
func (as AtomSet) UnmaskedIndices() []int {
	out := make([]int, 0, len(as))
	for i, a := range as {
		if !a.Masked {
			out = append(out, i)
		}
	}

	return out
}
