package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/molgrove/poremod/graph"
)

func labels(species ...string) []graph.Label {
	out := make([]graph.Label, len(species))
	for i, s := range species {
		out[i] = graph.Label{Species: s}
	}

	return out
}

func TestAddEdge_Validation(t *testing.T) {
	g := graph.NewGraph(labels("C", "H"))

	require.ErrorIs(t, g.AddEdge(0, 2, graph.EdgeProps{}), graph.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0, graph.EdgeProps{}), graph.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(1, 1, graph.EdgeProps{}), graph.ErrSelfLoop)

	require.NoError(t, g.AddEdge(0, 1, graph.EdgeProps{Distance: 1.09}))
	require.ErrorIs(t, g.AddEdge(0, 1, graph.EdgeProps{}), graph.ErrDuplicateEdge)
	require.ErrorIs(t, g.AddEdge(1, 0, graph.EdgeProps{}), graph.ErrDuplicateEdge,
		"edges are undirected: the reversed pair is the same edge")
}

func TestNeighborsAndDegree(t *testing.T) {
	g := graph.NewGraph(labels("C", "C", "C", "H"))
	require.NoError(t, g.AddEdge(2, 0, graph.EdgeProps{}))
	require.NoError(t, g.AddEdge(2, 1, graph.EdgeProps{}))
	require.NoError(t, g.AddEdge(2, 3, graph.EdgeProps{}))

	require.Equal(t, 3, g.Degree(2))
	require.Equal(t, []int{0, 1, 3}, g.Neighbors(2), "neighbors are sorted")
	require.Equal(t, 1, g.Degree(0))
	require.True(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(0, 1))
}

func TestEdgeProperties(t *testing.T) {
	g := graph.NewGraph(labels("C", "H"))
	require.NoError(t, g.AddEdge(0, 1, graph.EdgeProps{Distance: 1.09}))

	props, ok := g.EdgeProperty(1, 0)
	require.True(t, ok, "property lookup is orientation-insensitive")
	require.Equal(t, 1.09, props.Distance)

	require.NoError(t, g.SetEdgeProperty(0, 1, graph.EdgeProps{Distance: 2.0, CrossBoundary: true}))
	props, _ = g.EdgeProperty(0, 1)
	require.True(t, props.CrossBoundary)

	require.ErrorIs(t, g.SetEdgeProperty(0, 0, graph.EdgeProps{}), graph.ErrEdgeNotFound)
}

func TestEdges_DeterministicOrder(t *testing.T) {
	g := graph.NewGraph(labels("C", "C", "C"))
	require.NoError(t, g.AddEdge(2, 1, graph.EdgeProps{}))
	require.NoError(t, g.AddEdge(1, 0, graph.EdgeProps{}))
	require.NoError(t, g.AddEdge(0, 2, graph.EdgeProps{}))

	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, 3, g.EdgeCount())
	for i, want := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		require.Equal(t, want[0], edges[i].U)
		require.Equal(t, want[1], edges[i].V)
	}
}

func TestInducedSubgraph(t *testing.T) {
	// Square 0-1-2-3 with one chord 0-2.
	g := graph.NewGraph(labels("C", "N", "O", "H"))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1], graph.EdgeProps{}))
	}

	sub, relabel, err := g.InducedSubgraph([]int{2, 0, 3})
	require.NoError(t, err)
	require.Equal(t, 3, sub.VertexCount())
	require.Equal(t, map[int]int{2: 0, 0: 1, 3: 2}, relabel)

	// Kept vertices take their position in the keep list.
	require.Equal(t, "O", sub.Label(0).Species)
	require.Equal(t, "C", sub.Label(1).Species)
	require.Equal(t, "H", sub.Label(2).Species)

	// Edges among kept vertices survive under the new indices; edges
	// touching the dropped vertex 1 do not.
	require.True(t, sub.HasEdge(0, 1)) // old 2-0
	require.True(t, sub.HasEdge(0, 2)) // old 2-3
	require.True(t, sub.HasEdge(1, 2)) // old 0-3
	require.Equal(t, 3, sub.EdgeCount())

	_, _, err = g.InducedSubgraph([]int{0, 9})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	g := graph.NewGraph(labels("C", "H"))
	require.NoError(t, g.AddEdge(0, 1, graph.EdgeProps{Distance: 1.09}))

	c := g.Clone()
	require.NoError(t, c.RemoveEdge(0, 1))
	require.NoError(t, c.SetLabel(0, graph.Label{Species: "N"}))

	require.True(t, g.HasEdge(0, 1), "removing in the clone must not touch the original")
	require.Equal(t, "C", g.Label(0).Species)
}

func TestSetLabel(t *testing.T) {
	g := graph.NewGraph(labels("H"))
	require.NoError(t, g.SetLabel(0, graph.Label{Species: "H", Masked: true}))
	require.True(t, g.Label(0).Masked)
	require.ErrorIs(t, g.SetLabel(5, graph.Label{}), graph.ErrVertexOutOfRange)
}

func TestLabelEquality(t *testing.T) {
	plain := graph.Label{Species: "H"}
	masked := graph.Label{Species: "H", Masked: true}

	require.False(t, plain.Equal(masked))
	require.True(t, plain.BareEqual(masked))
	require.False(t, plain.BareEqual(graph.Label{Species: "C"}))
}
