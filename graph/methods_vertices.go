package graph

// SetLabel overwrites the label of vertex i in place. Vertex count and
// identity never change after NewGraph, but the R-group mask bit on an
// existing vertex's Label does — SetLabel is how crystal.Mask/Unmask
// keep the bond graph's labels synchronized with AtomSet.Masked
// without rebuilding the whole graph.
func (g *Graph) SetLabel(i int, l Label) error {
	if !g.inRange(i) {
		return ErrVertexOutOfRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.labels[i] = l

	return nil
}
