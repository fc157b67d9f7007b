package language

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customises New.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	order  SignalOrder // zero means "sample it"
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds a private random source for reproducible sampling.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("language: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithOrder fixes the signal order instead of sampling it.
// Panics on an invalid order.
func WithOrder(o SignalOrder) Option {
	if !o.Valid() {
		panic("language: WithOrder: invalid signal order")
	}
	return func(c *config) {
		c.order = o
	}
}

// WithLogger traces the sampled choices at debug level. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("language: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
