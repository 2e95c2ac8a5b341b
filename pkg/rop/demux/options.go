package demux

import "github.com/rs/zerolog"

// Option configures a Demultiplexer.
type Option func(*config)

type config struct {
	logger          zerolog.Logger
	initialCapacity int
}

func defaultConfig() config {
	return config{
		logger:          zerolog.Nop(),
		initialCapacity: 16,
	}
}

// WithLogger receives spill, exhaustion and close events at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithInitialCapacity preallocates each spillover FIFO. Buffers still grow without bound.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic("demux: initial capacity cannot be negative")
	}

	return func(c *config) {
		c.initialCapacity = n
	}
}
