package poremod

import (
	"github.com/molgrove/poremod/crystal"
	"github.com/molgrove/poremod/isomorphism"
	"github.com/molgrove/poremod/replace"
	"github.com/molgrove/poremod/search"
)

// SubstructureSearch enumerates every occurrence of query as a
// subgraph of parent and groups the result by location. With exact
// set, only full graph isomorphisms are accepted (equal sizes, edges
// preserved both ways).
//
// The grouped result is deterministic: locations are ordered
// lexicographically on their sorted vertex sets, and orientations
// within a location follow enumeration order.
func SubstructureSearch(query, parent *crystal.Crystal, exact bool) (*search.Search, error) {
	isos, err := isomorphism.FindSubgraphIsomorphisms(query.Bonds, parent.Bonds, isomorphism.Options{Exact: exact})
	if err != nil {
		return nil, err
	}

	return search.Build(query, parent, isos, exact), nil
}

// SubstructureReplace substitutes the replacement moiety at locations
// of a prior search, selected by the scheme options (all locations and
// optimal orientation by default). Warnings raised along the way are
// emitted through the configured logger; callers needing them as
// values should use replace.Engine directly.
func SubstructureReplace(s *search.Search, replacement *crystal.Crystal, opts ...replace.SchemeOption) (*crystal.Crystal, error) {
	configs, err := replace.Resolve(s, opts...)
	if err != nil {
		return nil, err
	}

	out, _, err := replace.Engine(s, replacement, configs, opts...)

	return out, err
}

// Replace composes SubstructureSearch and SubstructureReplace: find
// query in parent, substitute replacement per the scheme options.
func Replace(parent, query, replacement *crystal.Crystal, opts ...replace.SchemeOption) (*crystal.Crystal, error) {
	s, err := SubstructureSearch(query, parent, false)
	if err != nil {
		return nil, err
	}

	return SubstructureReplace(s, replacement, opts...)
}

// Contains reports whether query occurs at least once as a subgraph of
// parent — the membership predicate the search engine answers without
// a full replacement pass.
func Contains(query, parent *crystal.Crystal) (bool, error) {
	s, err := SubstructureSearch(query, parent, false)
	if err != nil {
		return false, err
	}

	return s.NbIsomorphisms() > 0, nil
}
