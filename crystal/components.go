package crystal

import (
	"sort"

	"github.com/molgrove/poremod/graph"
)

// ConnectedComponents partitions a bond graph's vertices into
// connected components by breadth-first traversal from each unvisited
// vertex. Components are returned in order of their smallest vertex,
// each sorted ascending, so the output is deterministic.
//
// The moiety loader uses this to flag disconnected moieties (a usually
// unintended artifact of a bad bond list); it is also handy for
// inspecting fragments of a replaced crystal.
//
// Complexity: O(V + E).
func ConnectedComponents(g *graph.Graph) [][]int {
	n := g.VertexCount()
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		var component []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			component = append(component, v)
			for _, nb := range g.Neighbors(v) {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		components = append(components, component)
	}

	for _, c := range components {
		sort.Ints(c)
	}

	return components
}
