package trajectory

import "go.uber.org/zap"

// Option customises plan construction.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger reports leg and trajectory counts at debug level.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("trajectory: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
