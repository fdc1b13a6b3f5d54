// Package priority converts raw per-category activity counts into priority
// levels. Scores combine counts with recency and importance multipliers,
// and bucketing uses thresholds that scale with the user's total activity.
package priority

import (
	"github.com/piggybong/fanplan/internal/domain/model"
)

// Threshold tuning constants. Thresholds are dynamic: a share of the total
// weighted activity, but never below a fixed floor so light users do not
// see every category promoted.
const (
	highShare   = 0.35
	mediumShare = 0.15
	highFloor   = 3.0
	mediumFloor = 1.0
)

// DefaultImportance holds the fixed category-importance multipliers.
// Concerts are high-impact and infrequent; subscriptions are ongoing and
// less priority-defining.
var DefaultImportance = map[model.Category]float64{
	model.CategoryConcerts:      1.3,
	model.CategoryAlbums:        1.2,
	model.CategoryEvents:        1.1,
	model.CategoryMerch:         1.0,
	model.CategorySubscriptions: 0.9,
	model.CategoryOther:         0.8,
}

// defaultOtherImportance applies to categories missing from a custom
// importance map.
const defaultOtherImportance = 0.8

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithImportance overrides the category-importance multipliers. Only
// positive weights are taken; categories left out keep the fallback weight.
func WithImportance(weights map[model.Category]float64, fallback float64) Option {
	return func(s *Scorer) {
		s.importance = make(map[model.Category]float64, len(weights))
		for c, w := range weights {
			if w > 0 {
				s.importance[c] = w
			}
		}
		if fallback > 0 {
			s.fallbackImportance = fallback
		}
	}
}

// Scorer buckets categories into priority levels from weighted scores.
type Scorer struct {
	importance         map[model.Category]float64
	fallbackImportance float64
}

// NewScorer creates a Scorer with the default importance multipliers.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		importance:         DefaultImportance,
		fallbackImportance: defaultOtherImportance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WeightedScores combines raw counts with recency multipliers and the
// importance table. Categories absent from counts score zero.
func (s *Scorer) WeightedScores(counts map[model.Category]int, recencyMultipliers map[model.Category]float64) map[model.Category]float64 {
	scores := make(map[model.Category]float64, len(counts))
	for c, count := range counts {
		imp, ok := s.importance[c]
		if !ok {
			imp = s.fallbackImportance
		}
		rec := recencyMultipliers[c]
		if rec == 0 {
			rec = 1.0
		}
		scores[c] = float64(count) * rec * imp
	}
	return scores
}

// Bucket assigns a priority level to each of the five main categories from
// the weighted scores. The total includes every scored category, so spend
// in the catch-all bucket still raises the bar for the main ones, but only
// main categories appear in the output.
func (s *Scorer) Bucket(scores map[model.Category]float64) model.CategoryPriorities {
	total := 0.0
	for _, v := range scores {
		total += v
	}

	high, medium := Thresholds(total)

	priorities := make(model.CategoryPriorities, len(model.MainCategories))
	for _, c := range model.MainCategories {
		switch score := scores[c]; {
		case score >= high:
			priorities[c] = model.PriorityHigh
		case score >= medium:
			priorities[c] = model.PriorityMedium
		default:
			priorities[c] = model.PriorityLow
		}
	}
	return priorities
}

// Thresholds returns the high and medium cutoffs for a given total weighted
// score.
func Thresholds(total float64) (high, medium float64) {
	high = total * highShare
	if high < highFloor {
		high = highFloor
	}
	medium = total * mediumShare
	if medium < mediumFloor {
		medium = mediumFloor
	}
	return high, medium
}
