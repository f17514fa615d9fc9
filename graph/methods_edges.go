package graph

import "sort"

// AddEdge creates an undirected edge between i and j with the given
// properties.
//
// Steps:
//  1. Validate indices are in range.
//  2. Reject self-loops (ErrSelfLoop) and duplicate edges (ErrDuplicateEdge).
//  3. Record adjacency both directions and store the canonical edge property.
//
// Complexity: O(1).
func (g *Graph) AddEdge(i, j int, props EdgeProps) error {
	if !g.inRange(i) || !g.inRange(j) {
		return ErrVertexOutOfRange
	}
	if i == j {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[i][j]; ok {
		return ErrDuplicateEdge
	}

	g.adjacency[i][j] = struct{}{}
	g.adjacency[j][i] = struct{}{}
	g.edgeProps[canonicalKey(i, j)] = props

	return nil
}

// RemoveEdge deletes the edge between i and j, if any.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[i][j]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.adjacency[i], j)
	delete(g.adjacency[j], i)
	delete(g.edgeProps, canonicalKey(i, j))

	return nil
}

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[i][j]

	return ok
}

// Degree returns the number of neighbors of vertex i.
func (g *Graph) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[i])
}

// Neighbors returns the sorted neighbor indices of vertex i.
func (g *Graph) Neighbors(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency[i]))
	for n := range g.adjacency[i] {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// EdgeProperty returns the properties of the edge between i and j.
func (g *Graph) EdgeProperty(i, j int) (EdgeProps, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	props, ok := g.edgeProps[canonicalKey(i, j)]

	return props, ok
}

// SetEdgeProperty overwrites the properties of an existing edge.
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph) SetEdgeProperty(i, j int, props EdgeProps) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := canonicalKey(i, j)
	if _, ok := g.edgeProps[key]; !ok {
		return ErrEdgeNotFound
	}
	g.edgeProps[key] = props

	return nil
}

// Edges returns all edges sorted by (U, V) ascending — deterministic
// order suitable for golden tests and stable replacement bookkeeping.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeProps))
	for k, props := range g.edgeProps {
		out = append(out, Edge{U: k.u, V: k.v, Props: props})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].U != out[b].U {
			return out[a].U < out[b].U
		}

		return out[a].V < out[b].V
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeProps)
}
