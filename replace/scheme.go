package replace

import (
	"fmt"

	"github.com/molgrove/poremod/search"
)

// Resolve turns a replacement scheme into the concrete list of
// (location, orientation) configurations the engine consumes.
//
// Scheme grammar:
//   - nothing specified      — every location, optimal orientation.
//   - WithRandom alone       — every location, random orientation each.
//   - WithNbLoc(k)           — k distinct locations sampled uniformly;
//     orientation optimal, or random with WithRandom.
//   - WithLoc(...)           — exactly those locations; orientation
//     optimal, or random with WithRandom.
//   - WithLoc + WithOri      — exact pairs, same length, each valid,
//     no duplicates; ori 0 means optimal at that location.
//
// Contradictory combinations (WithOri without WithLoc, WithNbLoc with
// WithLoc, length mismatch, out-of-range or duplicated entries) return
// ErrInvalidScheme. A search with zero locations resolves to zero
// configurations; the engine turns that into a NoMatch warning.
//
// Complexity: O(k log k) in the number of selected locations.
func Resolve(s *search.Search, opts ...SchemeOption) ([]Config, error) {
	if s == nil {
		return nil, ErrNilSearch
	}
	cfg := newSchemeConfig(opts...)

	if err := validateScheme(cfg, s); err != nil {
		return nil, err
	}

	locs, err := selectLocations(cfg, s)
	if err != nil {
		return nil, err
	}

	if cfg.ori != nil {
		return pairConfigs(cfg, s, locs)
	}

	configs := make([]Config, len(locs))
	for i, loc := range locs {
		configs[i] = Config{Loc: loc, Ori: OriOptimal}
		if cfg.random {
			configs[i].Ori = cfg.rng.Intn(s.NbOrientationsAtLocation(loc))
		}
	}

	return configs, nil
}

func validateScheme(cfg *schemeConfig, s *search.Search) error {
	if cfg.ori != nil && cfg.loc == nil {
		return fmt.Errorf("%w: ori given without loc", ErrInvalidScheme)
	}
	if cfg.nbLoc >= 0 && cfg.loc != nil {
		return fmt.Errorf("%w: nb_loc and loc are mutually exclusive", ErrInvalidScheme)
	}
	if cfg.nbLoc > s.NbLocations() {
		return fmt.Errorf("%w: nb_loc %d exceeds %d locations",
			ErrInvalidScheme, cfg.nbLoc, s.NbLocations())
	}
	if cfg.ori != nil && len(cfg.ori) != len(cfg.loc) {
		return fmt.Errorf("%w: loc has %d entries, ori has %d",
			ErrInvalidScheme, len(cfg.loc), len(cfg.ori))
	}
	if cfg.ori != nil && cfg.random {
		return fmt.Errorf("%w: explicit ori and random are mutually exclusive", ErrInvalidScheme)
	}

	return nil
}

// selectLocations resolves the scheme's location choice to 0-based
// location indices, in a deterministic order for explicit/default
// schemes and in sampled order for WithNbLoc.
func selectLocations(cfg *schemeConfig, s *search.Search) ([]int, error) {
	switch {
	case cfg.loc != nil:
		out := make([]int, len(cfg.loc))
		seen := make(map[int]struct{}, len(cfg.loc))
		for i, l := range cfg.loc {
			if l < 1 || l > s.NbLocations() {
				return nil, fmt.Errorf("%w: location %d outside [1, %d]",
					ErrInvalidScheme, l, s.NbLocations())
			}
			if _, dup := seen[l]; dup && cfg.ori == nil {
				return nil, fmt.Errorf("%w: location %d duplicated", ErrInvalidScheme, l)
			}
			seen[l] = struct{}{}
			out[i] = l - 1
		}

		return out, nil

	case cfg.nbLoc >= 0:
		// Uniform sample without replacement via a seeded shuffle.
		perm := cfg.rng.Perm(s.NbLocations())

		return perm[:cfg.nbLoc], nil

	default:
		out := make([]int, s.NbLocations())
		for i := range out {
			out[i] = i
		}

		return out, nil
	}
}

// pairConfigs builds exact (loc, ori) pairs, validating each
// orientation against its location and rejecting duplicates.
func pairConfigs(cfg *schemeConfig, s *search.Search, locs []int) ([]Config, error) {
	configs := make([]Config, len(locs))
	seen := make(map[Config]struct{}, len(locs))
	for i, loc := range locs {
		ori := cfg.ori[i]
		if ori < 0 || ori > s.NbOrientationsAtLocation(loc) {
			return nil, fmt.Errorf("%w: orientation %d outside [0, %d] at location %d",
				ErrInvalidScheme, ori, s.NbOrientationsAtLocation(loc), loc+1)
		}
		c := Config{Loc: loc, Ori: ori - 1} // ori 0 becomes OriOptimal
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: configuration (loc=%d, ori=%d) duplicated",
				ErrInvalidScheme, loc+1, ori)
		}
		seen[c] = struct{}{}
		configs[i] = c
	}

	return configs, nil
}
