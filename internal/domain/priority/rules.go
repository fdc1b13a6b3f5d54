package priority

import (
	"github.com/piggybong/fanplan/internal/domain/model"
	"github.com/piggybong/fanplan/pkg/metrics"
)

// Business rule tuning constants.
const (
	// maxHighPriorities caps concurrent high buckets so the budget keeps a
	// focus.
	maxHighPriorities = 3
	// engagementThreshold marks the total weighted score above which an
	// engaged user should see at least one high-priority category.
	engagementThreshold = 5.0
)

// Rule names used for instrumentation.
const (
	ruleConcertFloor = "concert_floor"
	ruleHighCap      = "high_cap"
	ruleEngagedHigh  = "engaged_high"
)

// RuleEngine applies the ordered override rules to bucketed priorities.
type RuleEngine struct {
	maxHigh    int
	engagement float64
}

// RuleOption applies a configuration option to the RuleEngine.
type RuleOption func(*RuleEngine)

// WithMaxHigh overrides the cap on simultaneous high priorities.
func WithMaxHigh(n int) RuleOption {
	return func(r *RuleEngine) {
		if n > 0 {
			r.maxHigh = n
		}
	}
}

// WithEngagementThreshold overrides the total score above which at least
// one high priority is guaranteed.
func WithEngagementThreshold(t float64) RuleOption {
	return func(r *RuleEngine) {
		if t > 0 {
			r.engagement = t
		}
	}
}

// NewRuleEngine creates a RuleEngine with the default limits.
func NewRuleEngine(opts ...RuleOption) *RuleEngine {
	r := &RuleEngine{
		maxHigh:    maxHighPriorities,
		engagement: engagementThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply runs the three override rules in their fixed order and returns the
// adjusted priorities. The input map is modified in place and returned.
//
// Rule order matters: the concert floor may create the medium candidate
// that rule three later promotes, and the high cap must settle before the
// engaged-user guarantee is evaluated.
func (r *RuleEngine) Apply(priorities model.CategoryPriorities, scores map[model.Category]float64) model.CategoryPriorities {
	// Rule 1: any concert activity is significant; never leave it at low.
	if scores[model.CategoryConcerts] > 0 && priorities[model.CategoryConcerts] == model.PriorityLow {
		priorities[model.CategoryConcerts] = model.PriorityMedium
		metrics.RecordRuleApplied(ruleConcertFloor)
	}

	// Rule 2: keep focus by demoting the weakest high while the cap is
	// exceeded. Ties demote the category latest in the fixed order.
	for priorities.CountLevel(model.PriorityHigh) > r.maxHigh {
		weakest, found := r.pickExtreme(priorities, scores, model.PriorityHigh, false)
		if !found {
			break
		}
		priorities[weakest] = model.PriorityMedium
		metrics.RecordRuleApplied(ruleHighCap)
	}

	// Rule 3: engaged users get at least one high priority when a medium
	// candidate exists. Ties promote the category earliest in the fixed
	// order.
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total > r.engagement && priorities.CountLevel(model.PriorityHigh) == 0 {
		strongest, found := r.pickExtreme(priorities, scores, model.PriorityMedium, true)
		if found {
			priorities[strongest] = model.PriorityHigh
			metrics.RecordRuleApplied(ruleEngagedHigh)
		}
	}

	return priorities
}

// pickExtreme selects the highest- or lowest-scoring category currently at
// the given level, walking the fixed category order so ties are
// deterministic. When picking the maximum, the earlier category wins a tie;
// when picking the minimum, the later category loses it.
func (r *RuleEngine) pickExtreme(priorities model.CategoryPriorities, scores map[model.Category]float64, level model.PriorityLevel, wantMax bool) (model.Category, bool) {
	var picked model.Category
	found := false
	for _, c := range model.MainCategories {
		if priorities[c] != level {
			continue
		}
		if !found {
			picked, found = c, true
			continue
		}
		if wantMax {
			if scores[c] > scores[picked] {
				picked = c
			}
		} else {
			if scores[c] <= scores[picked] {
				picked = c
			}
		}
	}
	return picked, found
}
