package crystal

import "github.com/molgrove/poremod/graph"

// Mask tags atom idx as an R-group attachment point, updating both the
// atom set and the bond graph's label so isomorphism matching sees the
// new mask state immediately.
func (c *Crystal) Mask(idx int) error {
	return c.setMasked(idx, true)
}

// Unmask clears the R-group tag on atom idx.
func (c *Crystal) Unmask(idx int) error {
	return c.setMasked(idx, false)
}

// IsMasked reports whether atom idx carries the R-group tag.
func (c *Crystal) IsMasked(idx int) bool {
	return c.Atoms[idx].Masked
}

func (c *Crystal) setMasked(idx int, masked bool) error {
	if idx < 0 || idx >= len(c.Atoms) {
		return ErrIndexOutOfRange
	}
	c.Atoms[idx].Masked = masked

	return c.Bonds.SetLabel(idx, graph.Label{Species: c.Atoms[idx].Species, Masked: masked})
}
