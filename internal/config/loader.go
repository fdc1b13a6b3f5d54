package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if FANPLAN_CONFIG is set
//  3. env (prefix FANPLAN_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FANPLAN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FANPLAN_LOG_LEVEL, FANPLAN_TIMEFRAME_DAYS, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("FANPLAN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fanplan_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	if c.TimeframeDays <= 0 {
		return fmt.Errorf("%w: timeframe_days must be positive", ErrInvalidConfig)
	}
	if c.MaxHighPriorities <= 0 {
		return fmt.Errorf("%w: max_high_priorities must be positive", ErrInvalidConfig)
	}
	if c.EngagementThreshold < 0 {
		return fmt.Errorf("%w: engagement_threshold must not be negative", ErrInvalidConfig)
	}
	for id, w := range c.CategoryWeights {
		if w <= 0 {
			return fmt.Errorf("%w: category weight for %q must be positive", ErrInvalidConfig, id)
		}
	}
	return nil
}
