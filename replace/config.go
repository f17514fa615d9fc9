package replace

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/molgrove/poremod/crystal"
)

// OriOptimal selects, at a given location, the orientation whose
// aligned replacement has the smallest RMSD against the parent subset.
const OriOptimal = -1

// DefaultSeed seeds the scheme RNG when the caller requests random
// orientations or location sampling without supplying WithSeed or
// WithRand. A fixed default keeps unseeded runs reproducible.
const DefaultSeed int64 = 1

// Config selects one (location, orientation) pair from a Search, both
// 0-based. Ori may be OriOptimal.
type Config struct {
	Loc int
	Ori int
}

// SchemeOption customizes scheme resolution and engine execution by
// mutating a schemeConfig before work begins. Later options override
// earlier ones. Options only record values; all validation happens in
// Resolve, which is where contradictions surface as ErrInvalidScheme.
type SchemeOption func(cfg *schemeConfig)

// schemeConfig holds the replacement-scheme parameters. loc and ori
// are kept 1-based as supplied (ori 0 meaning "optimal") and converted
// to 0-based Config values during resolution.
type schemeConfig struct {
	random  bool
	nbLoc   int // -1 means unset
	loc     []int
	ori     []int
	rng     *rand.Rand
	name    string
	verbose bool
	logger  zerolog.Logger
}

func newSchemeConfig(opts ...SchemeOption) *schemeConfig {
	cfg := &schemeConfig{
		nbLoc:  -1,
		name:   crystal.DefaultName,
		logger: zerolog.Nop(),
	}

	var opt SchemeOption
	for _, opt = range opts {
		opt(cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithRandom requests a uniformly random orientation at each selected
// location instead of the RMSD-optimal one.
func WithRandom() SchemeOption {
	return func(cfg *schemeConfig) { cfg.random = true }
}

// WithNbLoc samples k distinct locations uniformly without
// replacement. Mutually exclusive with WithLoc.
func WithNbLoc(k int) SchemeOption {
	return func(cfg *schemeConfig) { cfg.nbLoc = k }
}

// WithLoc selects explicit locations, 1-based.
func WithLoc(loc ...int) SchemeOption {
	return func(cfg *schemeConfig) { cfg.loc = append([]int(nil), loc...) }
}

// WithOri selects explicit orientations, 1-based, paired positionally
// with WithLoc; 0 means "optimal at that location". Requires WithLoc
// of the same length.
func WithOri(ori ...int) SchemeOption {
	return func(cfg *schemeConfig) { cfg.ori = append([]int(nil), ori...) }
}

// WithSeed creates a deterministic RNG with the given seed. Use this
// in tests to lock random-orientation and location-sampling outcomes.
func WithSeed(seed int64) SchemeOption {
	return func(cfg *schemeConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG; prefer WithSeed for reproducible
// runs. Nil is ignored.
func WithRand(r *rand.Rand) SchemeOption {
	return func(cfg *schemeConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithName assigns a name to the produced crystal.
func WithName(name string) SchemeOption {
	return func(cfg *schemeConfig) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithVerbose emits per-configuration progress events at info level
// through the configured logger.
func WithVerbose() SchemeOption {
	return func(cfg *schemeConfig) { cfg.verbose = true }
}

// WithLogger routes warnings (and, with WithVerbose, progress events)
// through the given structured logger. The default discards them.
func WithLogger(l zerolog.Logger) SchemeOption {
	return func(cfg *schemeConfig) { cfg.logger = l }
}
