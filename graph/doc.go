// Package graph defines a vertex-labeled undirected graph specialized
// for atomic bond topology: Label carries a species symbol and an
// R-group mask flag, and each edge carries Distance/CrossBoundary
// properties instead of a numeric weight.
//
// Unlike a general-purpose graph keyed by string vertex IDs, vertex
// identity here is a dense 0-based index fixed at construction time —
// atom position in its owning AtomSet doubles as vertex identity, so a
// Graph never gains or loses vertices after NewGraph; only edges, edge
// properties and vertex labels (via SetLabel) mutate. InducedSubgraph is how a smaller graph with
// new, contiguous indices is produced.
//
// Graph is safe for concurrent readers and a single mutator under its
// own lock, mirroring the locking convention of a thread-safe
// adjacency-list graph: one RWMutex guards the edge/adjacency state.
package graph
