package longmap

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	DefaultInitialCapacity = 1 << 4
	DefaultLoadFactor      = 0.75
)

type config struct {
	initialCapacity uint64
	loadFactor      float64
	presize         int
	logger          *zap.Logger
}

type Option func(c *config)

// Sets the bucket array length the map starts with and returns to on
// Clear. Values that aren't a power of two are rounded up; zero or
// negative values keep the default.
func WithInitialCapacity(capacity int) Option {
	return func(c *config) {
		if capacity > 0 {
			c.initialCapacity = NextPowerOf2(uint64(capacity))
		}
	}
}

// Sets the ratio of entries to buckets above which the map grows.
// Must be a finite positive number.
func WithLoadFactor(loadFactor float64) Option {
	return func(c *config) {
		c.loadFactor = loadFactor
	}
}

// Makes the initial capacity large enough to hold sizeHint entries
// without growing. Zero or negative hints are ignored.
func WithPresize(sizeHint int) Option {
	return func(c *config) {
		c.presize = sizeHint
	}
}

// Override the default no-op logger. Growth and clear events are logged
// at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{
		initialCapacity: DefaultInitialCapacity,
		loadFactor:      DefaultLoadFactor,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.loadFactor <= 0 || math.IsNaN(c.loadFactor) || math.IsInf(c.loadFactor, 0) {
		panic(errors.AssertionFailedf("longmap: invalid load factor %v", c.loadFactor))
	}

	if c.presize > 0 {
		capacity := uint64(CapacityFor(c.presize, c.loadFactor))
		if thresholdFor(capacity, c.loadFactor) < c.presize {
			panic(errors.AssertionFailedf("longmap: presize %d exceeds capacity limit %d at load factor %v",
				c.presize, uint64(maxCapacity), c.loadFactor))
		}

		c.initialCapacity = max(c.initialCapacity, capacity)
	}

	if c.initialCapacity > maxCapacity {
		panic(errors.AssertionFailedf("longmap: initial capacity %d exceeds limit %d",
			c.initialCapacity, uint64(maxCapacity)))
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c
}
