package replace

import (
	"errors"
	"fmt"
	"sort"

	"github.com/molgrove/poremod/align"
	"github.com/molgrove/poremod/crystal"
	"github.com/molgrove/poremod/geometry"
	"github.com/molgrove/poremod/graph"
	"github.com/molgrove/poremod/isomorphism"
	"github.com/molgrove/poremod/search"
)

// Engine executes a resolved list of (location, orientation)
// configurations against a search result: for each configuration it
// rigidly aligns a copy of the replacement onto the matched parent
// subset, then assembles a single output crystal with the matched
// atoms deleted, the aligned fragments appended, external bonds
// rewired, coordinates wrapped into the unit cell, and every bond's
// Distance/CrossBoundary recomputed.
//
// Inputs are never mutated: the replacement is deep-copied before any
// transform, and the output crystal is freshly allocated.
//
// Non-fatal conditions (no match, ambiguous replacement map,
// degenerate alignment, null replacement) are returned as Warnings and
// logged; fatal conditions (invalid configuration, geometric
// precondition violation) abort with an error and no partial result.
func Engine(s *search.Search, replacement *crystal.Crystal, configs []Config, opts ...SchemeOption) (*crystal.Crystal, []Warning, error) {
	if s == nil {
		return nil, nil, ErrNilSearch
	}
	if replacement == nil {
		return nil, nil, ErrNilReplacement
	}
	cfg := newSchemeConfig(opts...)

	var warnings []Warning
	warn := func(w Warning) {
		warnings = append(warnings, w)
		cfg.logger.Warn().
			Str("kind", string(w.Kind)).
			Int("location", w.Loc).
			Msg(w.Detail)
	}

	if s.NbIsomorphisms() == 0 {
		warn(Warning{Kind: WarnNoMatch, Loc: -1, Ori: -1,
			Detail: "query has no isomorphism in parent; returning parent unchanged"})
		out := s.Parent.Clone()
		out.Name = cfg.name

		return out, warnings, nil
	}

	rep := replacement.Clone()
	uq := s.Query.Atoms.UnmaskedIndices()

	u2rCands, err := replacementMaps(s, rep, uq)
	if err != nil {
		return nil, nil, err
	}
	if len(u2rCands) > 1 {
		warn(Warning{Kind: WarnAmbiguousReplacementMap, Loc: -1, Ori: -1,
			Detail: fmt.Sprintf("unmasked query has %d isomorphisms in replacement; using the RMSD-minimizing one per configuration", len(u2rCands))})
	}
	if len(u2rCands) == 0 {
		warn(Warning{Kind: WarnNullReplacement, Loc: -1, Ori: -1,
			Detail: "unmasked query has no isomorphism in replacement; matches are deleted without insertion"})
	}

	assembled := s.Parent.Clone()
	assembled.Name = cfg.name
	deletion := make(map[int]struct{})

	for _, c := range configs {
		if c.Loc < 0 || c.Loc >= s.NbLocations() {
			return nil, nil, fmt.Errorf("%w: location index %d outside [0, %d)",
				ErrInvalidScheme, c.Loc, s.NbLocations())
		}
		if c.Ori != OriOptimal && (c.Ori < 0 || c.Ori >= s.NbOrientationsAtLocation(c.Loc)) {
			return nil, nil, fmt.Errorf("%w: orientation index %d outside [0, %d) at location %d",
				ErrInvalidScheme, c.Ori, s.NbOrientationsAtLocation(c.Loc), c.Loc)
		}

		iso, u2r, xrm, rmsd, degenerate, err := bestPlacement(s, rep, uq, u2rCands, c)
		if err != nil {
			return nil, nil, err
		}
		if degenerate {
			warn(Warning{Kind: WarnDegenerateAlignment, Loc: c.Loc, Ori: c.Ori,
				Detail: "fewer than 3 correspondence points; rotation is best-effort"})
		}

		for _, p := range iso {
			deletion[p] = struct{}{}
		}
		if xrm == nil {
			continue
		}
		if cfg.verbose {
			cfg.logger.Info().
				Int("location", c.Loc).
				Float64("rmsd", rmsd).
				Msg("replacement aligned")
		}

		var offset int
		assembled, offset, err = crystal.Concat(assembled, xrm)
		if err != nil {
			return nil, nil, err
		}
		if err := addExternalBonds(s, assembled, iso, uq, u2r, offset); err != nil {
			return nil, nil, err
		}
	}

	out, err := finalize(assembled, deletion, cfg.name)
	if err != nil {
		return nil, nil, err
	}

	return out, warnings, nil
}

// replacementMaps enumerates every isomorphism of the unmasked query
// into the replacement. An empty result (including an empty unmasked
// query or an empty replacement) signals null replacement.
func replacementMaps(s *search.Search, rep *crystal.Crystal, uq []int) ([][]int, error) {
	if len(uq) == 0 || rep.NumAtoms() == 0 {
		return nil, nil
	}

	qSub, _, err := s.Query.Bonds.InducedSubgraph(uq)
	if err != nil {
		return nil, err
	}

	return isomorphism.FindSubgraphIsomorphisms(qSub, rep.Bonds, isomorphism.Options{})
}

// bestPlacement picks, for one configuration, the (orientation, u2r)
// pair minimizing alignment RMSD and returns the chosen isomorphism,
// replacement map, and transformed replacement. Ties keep the earliest
// candidate, so the choice is deterministic. A nil xrm means null
// replacement: the match is deleted with nothing inserted.
func bestPlacement(s *search.Search, rep *crystal.Crystal, uq []int, u2rCands [][]int, c Config) (iso, u2r []int, xrm *crystal.Crystal, rmsd float64, degenerate bool, err error) {
	loc := s.Locations[c.Loc]

	oris := []int{c.Ori}
	if c.Ori == OriOptimal {
		oris = make([]int, len(loc.Orientations))
		for i := range oris {
			oris[i] = i
		}
	}

	if len(u2rCands) == 0 {
		// Orientation is irrelevant without insertion; every
		// orientation at a location shares the same vertex set.
		return loc.Orientations[oris[0]], nil, nil, 0, false, nil
	}

	found := false
	for _, o := range oris {
		for _, cand := range u2rCands {
			candXrm, candRMSD, candDegenerate, alignErr := alignOne(s, rep, loc.Orientations[o], uq, cand)
			if alignErr != nil {
				return nil, nil, nil, 0, false, alignErr
			}
			if !found || candRMSD < rmsd {
				found = true
				iso, u2r, xrm, rmsd, degenerate = loc.Orientations[o], cand, candXrm, candRMSD, candDegenerate
			}
		}
	}

	return iso, u2r, xrm, rmsd, degenerate, nil
}

// alignOne performs the per-configuration geometric pipeline: extract
// and PBC-adjust the parent subset, center both correspondence clouds,
// fit the Procrustes rotation, and transform a copy of the replacement
// into the parent's cell.
func alignOne(s *search.Search, rep *crystal.Crystal, iso, uq, u2r []int) (*crystal.Crystal, float64, bool, error) {
	// Parent subset in isomorphism order: position i holds the parent
	// image of query vertex i, anchored on the first matched atom.
	pFrac := make([]geometry.Vec3, len(iso))
	for i, p := range iso {
		pFrac[i] = s.Parent.Atoms[p].Frac
	}
	adjusted, err := geometry.AdjustForPBC(pFrac)
	if err != nil {
		return nil, 0, false, err
	}

	// Correspondence clouds: parent images of the unmasked query
	// vertices against their replacement counterparts, each centered
	// on its own centroid.
	bPts := make([]geometry.Vec3, len(uq))
	for k, qi := range uq {
		bPts[k] = s.Parent.Box.FracToCart(adjusted[qi])
	}
	bCentroid := geometry.Centroid(bPts)
	for k := range bPts {
		bPts[k] = geometry.Sub(bPts[k], bCentroid)
	}

	repCart := make([]geometry.Vec3, rep.NumAtoms())
	for i, a := range rep.Atoms {
		repCart[i] = rep.Box.FracToCart(a.Frac)
	}
	aPts := make([]geometry.Vec3, len(u2r))
	for k, ri := range u2r {
		aPts[k] = repCart[ri]
	}
	aCentroid := geometry.Centroid(aPts)
	for k := range aPts {
		aPts[k] = geometry.Sub(aPts[k], aCentroid)
	}

	rot, rmsd, err := align.Procrustes(aPts, bPts)
	degenerate := errors.Is(err, align.ErrDegenerateAlignment)
	if err != nil && !degenerate {
		return nil, 0, false, err
	}

	// Transformed replacement: rotate about the correspondence
	// centroid, translate onto the parent subset centroid, re-express
	// in the parent's fractional frame.
	xrm := rep.Clone()
	xrm.Box = s.Parent.Box
	for i := range xrm.Atoms {
		cart := align.Apply(rot, geometry.Sub(repCart[i], aCentroid))
		cart = geometry.Add(cart, bCentroid)
		xrm.Atoms[i].Frac = s.Parent.Box.CartToFrac(cart)
	}

	return xrm, rmsd, degenerate, nil
}

// addExternalBonds rewires every parent-side bond that crossed the
// match boundary: for each matched parent atom p with a neighbor n
// outside the match, a bond is added from n to the inserted
// counterpart of p. Masked query vertices have no counterpart and are
// skipped; bonds to atoms that end up deleted vanish in the final
// slice.
func addExternalBonds(s *search.Search, assembled *crystal.Crystal, iso, uq, u2r []int, offset int) error {
	isoSet := make(map[int]struct{}, len(iso))
	for _, p := range iso {
		isoSet[p] = struct{}{}
	}
	repIdxOfQuery := make(map[int]int, len(uq))
	for k, qi := range uq {
		repIdxOfQuery[qi] = u2r[k]
	}

	for qi, p := range iso {
		ri, ok := repIdxOfQuery[qi]
		if !ok {
			continue
		}
		for _, n := range s.Parent.Bonds.Neighbors(p) {
			if _, inside := isoSet[n]; inside {
				continue
			}
			target := offset + ri
			if assembled.Bonds.HasEdge(n, target) {
				continue
			}
			if err := assembled.Bonds.AddEdge(n, target, graph.EdgeProps{}); err != nil {
				return err
			}
		}
	}

	return nil
}

// finalize wraps coordinates into the unit cell, slices out the
// deletion set, and recomputes every bond's Distance/CrossBoundary
// under the final geometry.
func finalize(assembled *crystal.Crystal, deletion map[int]struct{}, name string) (*crystal.Crystal, error) {
	drop := make([]int, 0, len(deletion))
	for p := range deletion {
		drop = append(drop, p)
	}
	sort.Ints(drop)

	wrapped := assembled.Wrap()
	out, _, err := wrapped.Slice(wrapped.Complement(drop))
	if err != nil {
		return nil, err
	}
	out.Name = name

	if err := crystal.RecomputeBonds(out.Box, out.Atoms, out.Bonds); err != nil {
		return nil, err
	}

	return out, nil
}
