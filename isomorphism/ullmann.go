package isomorphism

import (
	"context"

	"github.com/molgrove/poremod/graph"
)

// Options configures a single FindSubgraphIsomorphisms call.
type Options struct {
	// Exact requires a full graph isomorphism: |Vq|==|Vp| and edge
	// preservation both ways, not just query-edge-implies-parent-edge.
	Exact bool

	// Ctx allows cancellation of long-running searches over large
	// parents; if nil, context.Background() is used.
	Ctx context.Context

	// OnAssign, if non-nil, is called with (queryVertex, parentVertex)
	// every time the search tentatively assigns a candidate: after the
	// candidate passes the adjacency check against already-assigned
	// neighbors, before matrix refinement — useful for
	// tracing/instrumentation.
	OnAssign func(qi, pi int)
}

// FindSubgraphIsomorphisms enumerates every injective vertex map
// iso: [0..|query|) -> [0..|parent|) such that species symbols match
// (mask tags ignored) at every mapped vertex and every query edge
// (i,j) maps to a parent edge (iso[i], iso[j]). In Exact mode the
// match must also be a full graph isomorphism (sizes equal, edges
// preserved both ways).
//
// The returned slice is in deterministic enumeration order: increasing
// query-vertex selection order, increasing parent-candidate order at
// each level. Repeated calls on the same inputs yield identical output.
//
// Complexity: worst-case exponential in |query|; see package doc.
func FindSubgraphIsomorphisms(query, parent *graph.Graph, opts Options) ([][]int, error) {
	if query == nil || parent == nil {
		return nil, ErrNilGraph
	}

	ctx := context.Background()
	if opts.Ctx != nil {
		ctx = opts.Ctx
	}

	nq, np := query.VertexCount(), parent.VertexCount()
	if nq == 0 {
		return [][]int{{}}, nil
	}
	if nq > np || (opts.Exact && nq != np) {
		return nil, nil
	}
	if !speciesFeasible(query, parent) {
		return nil, nil
	}

	s := &searcher{
		query:      query,
		parent:     parent,
		opts:       opts,
		nq:         nq,
		np:         np,
		assignment: make([]int, nq),
		used:       make([]bool, np),
		ctx:        ctx,
	}
	for i := range s.assignment {
		s.assignment[i] = -1
	}

	if err := s.backtrack(0, initialMatrix(query, parent, opts.Exact)); err != nil {
		return nil, err
	}

	return s.results, nil
}

type searcher struct {
	query, parent *graph.Graph
	opts          Options
	nq, np        int
	assignment    []int
	used          []bool
	results       [][]int
	ctx           context.Context
}

func (s *searcher) backtrack(level int, m [][]bool) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	if level == s.nq {
		mapped := append([]int(nil), s.assignment...)
		if !s.opts.Exact || isGraphIsomorphism(s.query, s.parent, mapped) {
			s.results = append(s.results, mapped)
		}

		return nil
	}

	i := level
	for p := 0; p < s.np; p++ {
		if !m[i][p] || s.used[p] {
			continue
		}
		if !consistentWithAssigned(s.query, s.parent, s.assignment, i, p) {
			continue
		}

		s.assignment[i] = p
		s.used[p] = true
		if s.opts.OnAssign != nil {
			s.opts.OnAssign(i, p)
		}

		refined := refineMatrix(s.query, s.parent, m, i, p)
		if err := s.backtrack(level+1, refined); err != nil {
			s.assignment[i] = -1
			s.used[p] = false

			return err
		}

		s.assignment[i] = -1
		s.used[p] = false
	}

	return nil
}

// initialMatrix builds M[i][p] = species(i)==species(p) and a
// degree-compatible (exact: equal, else <=) relationship. Species
// comparison ignores the R-group mask tag: a masked H in a query still
// matches an ordinary parent H; topology matching strips tags.
func initialMatrix(query, parent *graph.Graph, exact bool) [][]bool {
	nq, np := query.VertexCount(), parent.VertexCount()
	m := make([][]bool, nq)
	for i := 0; i < nq; i++ {
		m[i] = make([]bool, np)
		qLabel := query.Label(i)
		qDeg := query.Degree(i)
		for p := 0; p < np; p++ {
			if !qLabel.BareEqual(parent.Label(p)) {
				continue
			}
			pDeg := parent.Degree(p)
			if exact {
				m[i][p] = qDeg == pDeg
			} else {
				m[i][p] = qDeg <= pDeg
			}
		}
	}

	return m
}

// refineMatrix applies the Ullmann neighborhood condition after
// tentatively assigning query vertex i to parent vertex p: column p is
// removed from every row (already used), and for every query neighbor
// j of i, any candidate q not adjacent to p in the parent is removed
// from M[j].
func refineMatrix(query, parent *graph.Graph, m [][]bool, i, p int) [][]bool {
	nq, np := len(m), len(m[0])
	out := make([][]bool, nq)
	for r := range m {
		out[r] = append([]bool(nil), m[r]...)
	}
	for r := 0; r < nq; r++ {
		out[r][p] = false
	}
	for _, j := range query.Neighbors(i) {
		for q := 0; q < np; q++ {
			if out[j][q] && !parent.HasEdge(p, q) {
				out[j][q] = false
			}
		}
	}

	return out
}

// consistentWithAssigned defensively re-checks that p is adjacent (in
// the parent) to the images of every already-assigned query neighbor
// of i. refineMatrix should already guarantee this transitively, but
// the check is cheap (bounded by query degree) and guards against any
// future change to the refinement step breaking that invariant.
func consistentWithAssigned(query, parent *graph.Graph, assignment []int, i, p int) bool {
	for _, j := range query.Neighbors(i) {
		if assignment[j] == -1 {
			continue
		}
		if !parent.HasEdge(p, assignment[j]) {
			return false
		}
	}

	return true
}

func isGraphIsomorphism(query, parent *graph.Graph, iso []int) bool {
	n := len(iso)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if query.HasEdge(a, b) != parent.HasEdge(iso[a], iso[b]) {
				return false
			}
		}
	}

	return true
}

// speciesFeasible reports whether the query's species multiset
// (tag-insensitive) is a sub-multiset of the parent's. Used as a cheap
// early exit before the exponential backtracking search.
func speciesFeasible(query, parent *graph.Graph) bool {
	need := make(map[string]int)
	for _, l := range query.Labels() {
		need[l.Species]++
	}
	have := make(map[string]int)
	for _, l := range parent.Labels() {
		have[l.Species]++
	}
	for l, n := range need {
		if have[l] < n {
			return false
		}
	}

	return true
}
