package xorindex

// defaultMaxAttempts: the probability of exceeding it is lower than the
// probability of a cosmic ray corrupting the machine running this code,
// except when the caller's key set has duplicates, in which case it is
// an early warning sign.
const defaultMaxAttempts = 1024

const defaultSegments = 3

// Option configures a Build or Builder.Build call.
type Option func(*buildConfig)

type buildConfig struct {
	segments    int
	seed        uint64
	haveSeed    bool
	maxAttempts int
	originTags  bool
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		segments:    defaultSegments,
		maxAttempts: defaultMaxAttempts,
		originTags:  true,
	}
}

// WithSegments sets the number of hash segments s (default 3, the only
// studied configuration; s>3 is experimental, see rotationAmounts).
func WithSegments(s int) Option {
	return func(c *buildConfig) {
		c.segments = s
	}
}

// WithSeed fixes the initial seed instead of drawing one at random.
// Construction still rehashes the seed (seed <- H(seed)) on every
// attempt, so this controls the starting point of that sequence, not a
// literal final seed.
func WithSeed(seed uint64) Option {
	return func(c *buildConfig) {
		c.seed = seed
		c.haveSeed = true
	}
}

// WithMaxAttempts caps the number of peeling retries before Build returns
// ErrConstructionBudgetExceeded.
func WithMaxAttempts(n int) Option {
	return func(c *buildConfig) {
		c.maxAttempts = n
	}
}

// WithOriginTags controls whether the per-slot origin-tag array needed by
// Index is built. Defaults to true; pass false for a Contains-only filter
// to save m bytes.
func WithOriginTags(enabled bool) Option {
	return func(c *buildConfig) {
		c.originTags = enabled
	}
}
