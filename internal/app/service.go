// Package service wires the categorizer, scorer, rule engine, and insights
// aggregator into the fan activity engine consumed by callers.
package service

import (
	"context"
	"time"

	"github.com/piggybong/fanplan/internal/domain/categorize"
	"github.com/piggybong/fanplan/internal/domain/insights"
	"github.com/piggybong/fanplan/internal/domain/model"
	"github.com/piggybong/fanplan/internal/domain/priority"
	"github.com/piggybong/fanplan/internal/domain/recency"
	"github.com/piggybong/fanplan/pkg/logger"
	"github.com/piggybong/fanplan/pkg/metrics"
)

// Clock supplies the engine's notion of now. Injected so every computation
// is a pure function of the activity snapshot and a fixed instant.
type Clock func() time.Time

// Engine is the fan activity priority and insights engine. It holds no
// mutable state after construction and is safe for concurrent use with
// distinct inputs. Construct one instance at startup and pass it to
// callers explicitly.
type Engine struct {
	categorizer *categorize.Categorizer
	scorer      *priority.Scorer
	rules       *priority.RuleEngine
	aggregator  *insights.Aggregator

	timeframe time.Duration
	clock     Clock
	logger    logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source. Fix it in tests for reproducible output.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithTimeframe sets the default analysis window.
func WithTimeframe(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeframe = d
		}
	}
}

// WithCategorizer sets a custom categorizer shared by both pipelines.
func WithCategorizer(cz *categorize.Categorizer) Option {
	return func(e *Engine) {
		if cz != nil {
			e.categorizer = cz
		}
	}
}

// WithImportanceWeights overrides the category importance multipliers used
// by the priority scorer.
func WithImportanceWeights(weights map[model.Category]float64, fallback float64) Option {
	return func(e *Engine) {
		e.scorer = priority.NewScorer(priority.WithImportance(weights, fallback))
	}
}

// WithRuleEngine sets a custom business rule engine.
func WithRuleEngine(r *priority.RuleEngine) Option {
	return func(e *Engine) {
		if r != nil {
			e.rules = r
		}
	}
}

// New constructs an Engine with default collaborators.
func New(opts ...Option) *Engine {
	e := &Engine{
		categorizer: categorize.New(),
		scorer:      priority.NewScorer(),
		rules:       priority.NewRuleEngine(),
		timeframe:   insights.DefaultTimeframe,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.aggregator == nil {
		e.aggregator = insights.NewAggregator(insights.WithCategorizer(e.categorizer))
	}
	if e.logger == nil {
		e.logger = logger.Named("engine")
	}
	return e
}

// Priorities computes the category priority map for the current activity
// snapshot. Activities outside the engine's timeframe relative to now are
// ignored. The result always contains exactly the five main categories.
func (e *Engine) Priorities(ctx context.Context, activities []model.Activity) model.CategoryPriorities {
	now := e.clock()
	started := time.Now()

	counts, byCategory := e.windowCounts(now, activities)

	multipliers := make(map[model.Category]float64, len(byCategory))
	for c, members := range byCategory {
		multipliers[c] = recency.Weight(now, members)
	}

	scores := e.scorer.WeightedScores(counts, multipliers)
	priorities := e.rules.Apply(e.scorer.Bucket(scores), scores)

	metrics.RecordPriorityComputation(float64(time.Since(started).Microseconds()) / 1000)
	e.logger.Debug(ctx, "priorities computed",
		logger.Int("activities", len(activities)),
		logger.Int("high", priorities.CountLevel(model.PriorityHigh)),
		logger.Int("medium", priorities.CountLevel(model.PriorityMedium)),
	)
	return priorities
}

// Insights computes the analytics report for the given window. A
// non-positive timeframe uses the engine default.
func (e *Engine) Insights(ctx context.Context, activities []model.Activity, timeframe time.Duration) insights.Report {
	now := e.clock()
	started := time.Now()

	if timeframe <= 0 {
		timeframe = e.timeframe
	}
	report := e.aggregator.Analyze(now, activities, timeframe)

	metrics.RecordInsightComputation(float64(time.Since(started).Microseconds()) / 1000)
	metrics.UpdateActivitiesAnalyzed(report.TotalActivities)
	e.logger.Debug(ctx, "insights computed",
		logger.Int("activities", report.TotalActivities),
		logger.Int("recommendations", len(report.Recommendations)),
	)
	return report
}

// Report bundles both pipeline outputs for one snapshot. Re-running with
// the same snapshot and clock yields identical output.
type Report struct {
	Priorities model.CategoryPriorities `json:"category_priorities"`
	Insights   insights.Report          `json:"insights"`
}

// Analyze runs both pipelines over the snapshot.
func (e *Engine) Analyze(ctx context.Context, activities []model.Activity) Report {
	return Report{
		Priorities: e.Priorities(ctx, activities),
		Insights:   e.Insights(ctx, activities, e.timeframe),
	}
}

// windowCounts filters activities to the engine timeframe, resolves their
// categories, and returns per-category counts plus the grouped activities
// used for recency weighting.
func (e *Engine) windowCounts(now time.Time, activities []model.Activity) (map[model.Category]int, map[model.Category][]model.Activity) {
	cutoff := now.Add(-e.timeframe)

	counts := make(map[model.Category]int)
	byCategory := make(map[model.Category][]model.Activity)
	for _, a := range activities {
		if a.Timestamp.Before(cutoff) {
			continue
		}
		c := e.categorizer.Categorize(a, now)
		counts[c]++
		byCategory[c] = append(byCategory[c], a)
	}
	return counts, byCategory
}
