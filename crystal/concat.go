package crystal

import "github.com/molgrove/poremod/graph"

// Concat appends b's atoms and internal bonds after a's, using a's box
// and name. The returned offset is len(a.Atoms) — b's atom i lands at
// index offset+i in the result, which callers need to translate
// cross-fragment bond endpoints.
//
// Concat does not add any bond between a's and b's atoms; callers add
// external bonds afterward via the returned Crystal's Bonds.AddEdge.
func Concat(a, b *Crystal) (result *Crystal, offset int, err error) {
	offset = len(a.Atoms)

	atoms := make(AtomSet, 0, len(a.Atoms)+len(b.Atoms))
	atoms = append(atoms, a.Atoms...)
	atoms = append(atoms, b.Atoms...)

	var charges []float64
	if a.Charges != nil || b.Charges != nil {
		charges = make([]float64, len(atoms))
		if a.Charges != nil {
			copy(charges, a.Charges)
		}
		if b.Charges != nil {
			copy(charges[offset:], b.Charges)
		}
	}

	bonds := graph.NewGraph(atoms.Labels())
	for _, e := range a.Bonds.Edges() {
		if err := bonds.AddEdge(e.U, e.V, e.Props); err != nil {
			return nil, 0, err
		}
	}
	for _, e := range b.Bonds.Edges() {
		if err := bonds.AddEdge(offset+e.U, offset+e.V, e.Props); err != nil {
			return nil, 0, err
		}
	}

	result, err = New(a.Name, a.Box, atoms, bonds, charges)
	if err != nil {
		return nil, 0, err
	}

	return result, offset, nil
}
