package hashmap

import (
	"go.uber.org/zap"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/internal/options"
	"github.com/arloliu/slotkit/primes"
)

// Config holds the construction settings of a Dictionary.
type Config struct {
	capacity           int
	logger             *zap.Logger
	collisionThreshold int
}

// Option configures a Dictionary.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		logger:             zap.NewNop(),
		collisionThreshold: primes.HashCollisionThreshold,
	}
}

// WithCapacity preallocates room for n entries.
//
// Returns ErrInvalidCapacity from New if n is negative.
func WithCapacity(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return errs.ErrInvalidCapacity
		}
		c.capacity = n

		return nil
	})
}

// WithLogger sets the logger for resize and collision events. Events are
// logged at debug level, except the first degenerate chain which is a warning.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithCollisionThreshold overrides primes.HashCollisionThreshold as the
// number of chain links an insert may walk before the table reports a
// degenerate hash distribution. Zero disables detection.
func WithCollisionThreshold(n int) Option {
	return options.NoError(func(c *Config) {
		c.collisionThreshold = n
	})
}
