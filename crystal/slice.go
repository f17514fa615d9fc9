package crystal

// Slice returns a new Crystal containing exactly the atoms named by
// keep (in that order) and the bond graph induced on them, plus the
// old-index to new-index relabeling map. Charges are carried along
// when present.
func (c *Crystal) Slice(keep []int) (*Crystal, map[int]int, error) {
	newBonds, relabel, err := c.Bonds.InducedSubgraph(keep)
	if err != nil {
		return nil, nil, err
	}

	newAtoms := make(AtomSet, len(keep))
	var newCharges []float64
	if c.Charges != nil {
		newCharges = make([]float64, len(keep))
	}
	for newIdx, oldIdx := range keep {
		newAtoms[newIdx] = c.Atoms[oldIdx]
		if newCharges != nil {
			newCharges[newIdx] = c.Charges[oldIdx]
		}
	}

	sliced, err := New(c.Name, c.Box, newAtoms, newBonds, newCharges)
	if err != nil {
		return nil, nil, err
	}

	return sliced, relabel, nil
}

// Complement returns every atom index of c not present in drop.
func (c *Crystal) Complement(drop []int) []int {
	dropped := make(map[int]struct{}, len(drop))
	for _, i := range drop {
		dropped[i] = struct{}{}
	}

	out := make([]int, 0, len(c.Atoms)-len(dropped))
	for i := range c.Atoms {
		if _, ok := dropped[i]; !ok {
			out = append(out, i)
		}
	}

	return out
}
