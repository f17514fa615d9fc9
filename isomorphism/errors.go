package isomorphism

import "errors"

// ErrNilGraph indicates a nil query or parent graph was passed to
// FindSubgraphIsomorphisms.
var ErrNilGraph = errors.New("isomorphism: nil graph")
