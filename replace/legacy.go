package replace

import (
	"github.com/molgrove/poremod/crystal"
	"github.com/molgrove/poremod/isomorphism"
	"github.com/molgrove/poremod/search"
)

// EngineLegacy is the older three-moiety entry point: the R-group mask
// is supplied as an explicit index list into the query instead of
// being carried on the query's atoms. It is a thin adapter kept for
// source compatibility — the mask is applied to a private copy of the
// query and the call is forwarded through the unified tag-derived
// path, so both forms share one implementation.
func EngineLegacy(parent, query, replacement *crystal.Crystal, mask []int, opts ...SchemeOption) (*crystal.Crystal, []Warning, error) {
	if query == nil || parent == nil {
		return nil, nil, ErrNilSearch
	}
	if replacement == nil {
		return nil, nil, ErrNilReplacement
	}

	tagged := query.Clone()
	for _, idx := range mask {
		if err := tagged.Mask(idx); err != nil {
			return nil, nil, err
		}
	}

	isos, err := isomorphism.FindSubgraphIsomorphisms(tagged.Bonds, parent.Bonds, isomorphism.Options{})
	if err != nil {
		return nil, nil, err
	}
	s := search.Build(tagged, parent, isos, false)

	configs, err := Resolve(s, opts...)
	if err != nil {
		return nil, nil, err
	}

	return Engine(s, replacement, configs, opts...)
}
