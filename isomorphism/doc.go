// Package isomorphism finds every injective vertex map from a query
// graph into a parent graph that preserves species labels and
// adjacency — classical Ullmann backtracking, specialized so labels
// are atomic species and structural refinement exploits vertex degree.
//
// # Ullmann subgraph isomorphism
//
// Steps:
//  1. Build an initial |Vq|x|Vp| compatibility matrix M: M[i][p] is true
//     iff species(i)==species(p) — R-group mask tags are stripped for
//     matching — and deg_q(i)<=deg_p(p) (deg_q(i)==deg_p(p) in
//     Exact/graph-isomorphism mode).
//  2. Select query vertices in increasing index order; at each level,
//     try parent candidates from M[i] in increasing index order.
//  3. After tentatively assigning query i -> parent p: prune column p
//     (already used) from every row, then for each query neighbor j of
//     i, eliminate any candidate q from M[j] that p is not adjacent to
//     in the parent — the Ullmann neighborhood condition specialized to
//     the vertex just assigned.
//  4. On a full assignment, emit the map (in Exact mode, additionally
//     verify two-way edge preservation: the map must not only send
//     query edges to parent edges, but every parent edge between two
//     mapped vertices must correspond to a query edge).
//  5. On a dead end, backtrack: the refined matrix from step 3 is local
//     to the recursive call, so no explicit restore is needed.
//
// PBC-awareness enters only through the parent's bond graph: edges
// that cross the unit cell are ordinary graph edges there, so
// topological matching transparently finds matches wrapping around
// cell boundaries.
//
// Complexity is exponential worst-case; pragmatic inputs are small
// moieties (<=~30 atoms) against parents of thousands of atoms.
package isomorphism
