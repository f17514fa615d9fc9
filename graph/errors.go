package graph

import "errors"

// Sentinel errors for graph operations. Callers should branch with
// errors.Is; sentinels are never wrapped with formatted strings at
// their definition site.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself;
	// bond graphs are simple graphs and never carry self-loops.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between the same two vertices
	// already exists; bond graphs never carry multi-edges.
	ErrDuplicateEdge = errors.New("graph: duplicate edge not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
