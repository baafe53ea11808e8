package mcpserver

import (
	"fmt"
	"time"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
	"github.com/DeepakRathod14/java-custom-automation/internal/options"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every configuration variable name.
const EnvPrefix = "JSONCMP_"

// Config holds all configurable MCP server defaults.
// Loaded once at startup by LoadConfig and passed to Run.
type Config struct {
	// Cache settings.
	CacheEnabled       bool          `env:"CACHE_ENABLED"        envDefault:"true"`
	CacheMaxSize       int           `env:"CACHE_MAX_SIZE"       envDefault:"10"`
	CacheFileTTL       time.Duration `env:"CACHE_FILE_TTL"       envDefault:"15m"`
	CacheContentTTL    time.Duration `env:"CACHE_CONTENT_TTL"    envDefault:"15m"`
	CacheSweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"60s"`

	// Pagination defaults for the flatten tool.
	ListLimit int `env:"LIST_LIMIT" envDefault:"100"`
	MaxLimit  int `env:"MAX_LIMIT"  envDefault:"1000"`

	// Input limits.
	MaxInlineSize int64 `env:"MAX_INLINE_SIZE" envDefault:"10485760"`
	MaxFileSize   int64 `env:"MAX_FILE_SIZE"   envDefault:"10485760"`

	// MaxDepth bounds graph traversal in every tool.
	MaxDepth int `env:"MAX_DEPTH" envDefault:"100"`
}

// LoadConfig reads configuration from JSONCMP_* environment variables.
func LoadConfig() (*Config, error) {
	return loadConfig(env.Options{Prefix: EnvPrefix})
}

// loadConfig parses with explicit env options so tests can supply an
// isolated environment.
func loadConfig(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("mcpserver: loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("mcpserver: invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"CACHE_MAX_SIZE", c.CacheMaxSize},
		{"LIST_LIMIT", c.ListLimit},
		{"MAX_LIMIT", c.MaxLimit},
		{"MAX_DEPTH", c.MaxDepth},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &cmperrors.ConfigError{Option: EnvPrefix + p.name, Value: p.value, Message: "must be positive"}
		}
	}

	nonNegative := []struct {
		name  string
		value int64
	}{
		{"MAX_INLINE_SIZE", c.MaxInlineSize},
		{"MAX_FILE_SIZE", c.MaxFileSize},
		{"CACHE_FILE_TTL", int64(c.CacheFileTTL)},
		{"CACHE_CONTENT_TTL", int64(c.CacheContentTTL)},
		{"CACHE_SWEEP_INTERVAL", int64(c.CacheSweepInterval)},
	}
	for _, n := range nonNegative {
		if err := options.NonNegative(EnvPrefix+n.name, n.value); err != nil {
			return err
		}
	}

	if c.MaxLimit < c.ListLimit {
		c.MaxLimit = c.ListLimit
	}
	return nil
}
