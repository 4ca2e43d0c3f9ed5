package petsprite

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls cache sizing and background cleanup. The zero value is not
// useful; start from DefaultConfig or LoadConfig.
type Config struct {
	// MaxCacheSize is the soft capacity of the composed asset cache.
	MaxCacheSize int `env:"PETSPRITE_MAX_CACHE_SIZE" envDefault:"50"`
	// CleanupInterval is how often the janitor trims the caches.
	CleanupInterval time.Duration `env:"PETSPRITE_CLEANUP_INTERVAL" envDefault:"300s"`
	// Debug enables per-sweep stats logging.
	Debug bool `env:"PETSPRITE_DEBUG" envDefault:"false"`
	// DedupeInFlight collapses concurrent misses for the same key into one
	// composition.
	DedupeInFlight bool `env:"PETSPRITE_DEDUPE_IN_FLIGHT" envDefault:"true"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxCacheSize:    DefaultMaxCacheSize,
		CleanupInterval: DefaultCleanupInterval,
		DedupeInFlight:  true,
	}
}

// LoadConfig reads configuration from the process environment.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

// LoadConfigFrom reads configuration from the given variables instead of the
// process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: environ})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("petsprite: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.MaxCacheSize <= 0 {
		return fmt.Errorf("petsprite: max cache size must be positive, got %d", c.MaxCacheSize)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("petsprite: cleanup interval must be positive, got %v", c.CleanupInterval)
	}
	return nil
}
