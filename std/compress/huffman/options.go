package huffman

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/elysia-999/DS2025/logger"
	"github.com/rs/zerolog"
)

// Option configures a Codec.
type Option func(*Config) error

// Config is the resolved configuration of a Codec.
type Config struct {
	Policy Policy
	Rand   *rand.Rand
	Logger *zerolog.Logger
}

// NewConfig applies opts over the defaults: Greedy policy, a time-seeded
// source and the global logger.
func NewConfig(opts ...Option) (Config, error) {
	var cfg Config
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return Config{}, fmt.Errorf("apply option: %w", err)
		}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404
	}
	if cfg.Logger == nil {
		l := logger.Logger().With().Str("policy", cfg.Policy.String()).Logger()
		cfg.Logger = &l
	}
	return cfg, nil
}

// WithPolicy selects the merge policy.
func WithPolicy(p Policy) Option {
	return func(cfg *Config) error {
		if p != Greedy && p != Random {
			return fmt.Errorf("%w: %s", ErrInvalidPolicy, p)
		}
		cfg.Policy = p
		return nil
	}
}

// WithSeed seeds the source used by the Random policy.
func WithSeed(seed int64) Option {
	return func(cfg *Config) error {
		cfg.Rand = rand.New(rand.NewSource(seed)) //#nosec G404
		return nil
	}
}

// WithRand sets the source used by the Random policy.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *Config) error {
		if rng == nil {
			return errors.New("nil random source")
		}
		cfg.Rand = rng
		return nil
	}
}

// WithLogger replaces the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = &l
		return nil
	}
}
