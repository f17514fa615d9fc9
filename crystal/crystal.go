package crystal

import (
	"fmt"

	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/graph"
)

// DefaultName is the name assigned to a produced crystal when the
// caller does not request one.
const DefaultName = "new_xtal"

// Crystal is a named unit cell: a box, an ordered atom set, an
// undirected bond graph over the same vertex indices as the atom set,
// and optional per-atom charges.
type Crystal struct {
	Name    string
	Box     geometry.Box
	Atoms   AtomSet
	Bonds   *graph.Graph
	Charges []float64 // nil, or len(Charges) == len(Atoms)
}

// New validates and constructs a Crystal. Bonds must already carry one
// vertex per atom, in the same order; Charges, if non-nil, must have
// one entry per atom.
func New(name string, box geometry.Box, atoms AtomSet, bonds *graph.Graph, charges []float64) (*Crystal, error) {
	if bonds.VertexCount() != len(atoms) {
		return nil, fmt.Errorf("crystal.New: %w (%d atoms, %d bond vertices)",
			ErrAtomBondMismatch, len(atoms), bonds.VertexCount())
	}
	if charges != nil && len(charges) != len(atoms) {
		return nil, fmt.Errorf("crystal.New: %w (%d atoms, %d charges)",
			ErrChargesLengthMismatch, len(atoms), len(charges))
	}

	return &Crystal{
		Name:    name,
		Box:     box,
		Atoms:   atoms.Clone(),
		Bonds:   bonds,
		Charges: append([]float64(nil), charges...),
	}, nil
}

// NumAtoms returns the number of atoms.
func (c *Crystal) NumAtoms() int {
	return len(c.Atoms)
}

// Clone returns a deep copy of c. The replacement engine defensively
// clones its query and replacement inputs before tagging or
// transforming them, so callers' crystals never mutate under them.
func (c *Crystal) Clone() *Crystal {
	return &Crystal{
		Name:    c.Name,
		Box:     c.Box,
		Atoms:   c.Atoms.Clone(),
		Bonds:   c.Bonds.Clone(),
		Charges: append([]float64(nil), c.Charges...),
	}
}

// Wrap returns a new Crystal with every atom's fractional coordinate
// folded into [0,1). Bonds and their properties are unchanged (wrap
// never alters topology or recomputed distances — callers recompute
// distances separately if coordinates moved across a wrap).
func (c *Crystal) Wrap() *Crystal {
	out := c.Clone()
	wrapped := geometry.Wrap(c.Atoms.FracCoords())
	for i := range out.Atoms {
		out.Atoms[i].Frac = wrapped[i]
	}

	return out
}
