// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"context"
)

// Default configuration values.
const (
	defaultTimeframeDays  = 30
	defaultCategoryWeight = 0.8
	defaultEngagement     = 5.0
	defaultMaxHigh        = 3
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TimeframeDays bounds the analysis window for both pipelines.
	TimeframeDays int `koanf:"timeframe_days"`

	// CategoryWeights maps category ids to importance multipliers used by
	// the priority scorer.
	CategoryWeights map[string]float64 `koanf:"category_weights"`

	// DefaultCategoryWeight applies to categories missing from
	// CategoryWeights.
	DefaultCategoryWeight float64 `koanf:"default_category_weight"`

	// EngagementThreshold is the total weighted score above which at
	// least one category is guaranteed a high priority.
	EngagementThreshold float64 `koanf:"engagement_threshold"`

	// MaxHighPriorities caps concurrent high-priority categories.
	MaxHighPriorities int `koanf:"max_high_priorities"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:      "info",
		TimeframeDays: defaultTimeframeDays,
		CategoryWeights: map[string]float64{
			"concerts":      1.3,
			"albums":        1.2,
			"events":        1.1,
			"merch":         1.0,
			"subscriptions": 0.9,
			"other":         0.8,
		},
		DefaultCategoryWeight: defaultCategoryWeight,
		EngagementThreshold:   defaultEngagement,
		MaxHighPriorities:     defaultMaxHigh,
	}
}
