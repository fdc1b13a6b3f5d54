// Package recency computes temporal-decay multipliers for activity sets.
// Recent activity pulls a category's score up; stale activity drags it
// toward the lower clamp.
package recency

import (
	"math"
	"time"

	"github.com/piggybong/fanplan/internal/domain/model"
)

// Decay tuning constants.
const (
	halfWeightDays = 10.0 // decay denominator: weight = 2^(-days/10)
	minWeight      = 0.5
	maxWeight      = 2.0
	neutralWeight  = 1.0
	hoursPerDay    = 24.0
)

// Weight returns the mean decay multiplier for the given activities at the
// given reference time. An empty set is neutral.
func Weight(now time.Time, activities []model.Activity) float64 {
	if len(activities) == 0 {
		return neutralWeight
	}

	total := 0.0
	for _, a := range activities {
		total += single(now, a.Timestamp)
	}
	return total / float64(len(activities))
}

// single computes the clamped decay weight for one timestamp.
func single(now, ts time.Time) float64 {
	daysSince := now.Sub(ts).Hours() / hoursPerDay
	w := math.Pow(2, -daysSince/halfWeightDays)
	return math.Max(minWeight, math.Min(maxWeight, w))
}
