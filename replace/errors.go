package replace

import "errors"

var (
	// ErrInvalidScheme indicates the replacement-scheme arguments are
	// contradictory or out of range: loc/ori length mismatch, an index
	// beyond the search result, duplicated configurations, or nb_loc
	// combined with an explicit loc list. Always fatal to the call.
	ErrInvalidScheme = errors.New("replace: invalid replacement scheme")

	// ErrNilSearch indicates a nil Search was passed where one is required.
	ErrNilSearch = errors.New("replace: nil search")

	// ErrNilReplacement indicates a nil replacement crystal.
	ErrNilReplacement = errors.New("replace: nil replacement crystal")
)
