package insights

import (
	"sort"
	"time"

	"github.com/piggybong/fanplan/internal/domain/categorize"
	"github.com/piggybong/fanplan/internal/domain/model"
)

// Analysis tuning constants.
const (
	// DefaultTimeframe is the window analyzed when the caller does not
	// supply one.
	DefaultTimeframe = 30 * 24 * time.Hour

	trendChangePercent = 20.0 // mean amount must move this much to leave "stable"
	topItemCount       = 3
	hoursPerDay        = 24.0

	// Engagement score caps: spend, frequency, and diversity components.
	engagementSpendDivisor = 500.0
	engagementSpendCap     = 10.0
	engagementCountDivisor = 10.0
	engagementCountCap     = 5.0
	engagementDiversityCap = 5.0
)

// classified pairs an activity with its resolved category so the category
// is computed exactly once per activity.
type classified struct {
	model.Activity
	category model.Category
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithCategorizer sets the categorizer used to resolve activity categories.
func WithCategorizer(cz *categorize.Categorizer) Option {
	return func(ag *Aggregator) {
		if cz != nil {
			ag.categorizer = cz
		}
	}
}

// WithRecommender sets the recommendation generator.
func WithRecommender(r *Recommender) Option {
	return func(ag *Aggregator) {
		if r != nil {
			ag.recommender = r
		}
	}
}

// Aggregator computes the full analytics report over a time window. It is
// stateless after construction and safe for concurrent use.
type Aggregator struct {
	categorizer *categorize.Categorizer
	recommender *Recommender
}

// NewAggregator creates an Aggregator with default collaborators.
func NewAggregator(opts ...Option) *Aggregator {
	ag := &Aggregator{
		categorizer: categorize.New(),
		recommender: NewRecommender(),
	}
	for _, opt := range opts {
		opt(ag)
	}
	return ag
}

// Analyze builds the report for activities within [now-timeframe, now].
// A non-positive timeframe falls back to the default window. The result is
// a pure function of the inputs; no error paths exist, degenerate inputs
// yield zeroed fields.
func (ag *Aggregator) Analyze(now time.Time, activities []model.Activity, timeframe time.Duration) Report {
	if timeframe <= 0 {
		timeframe = DefaultTimeframe
	}
	cutoff := now.Add(-timeframe)

	window := make([]classified, 0, len(activities))
	for _, a := range activities {
		if a.Timestamp.Before(cutoff) {
			continue
		}
		window = append(window, classified{Activity: a, category: ag.categorizer.Categorize(a, now)})
	}

	total := totalAmount(window)
	report := Report{
		TimeframeDays:        int(timeframe / (hoursPerDay * time.Hour)),
		TotalActivities:      len(window),
		TotalSpent:           total,
		CategoryDistribution: ag.categoryDistribution(window, total),
		ArtistDistribution:   ag.artistDistribution(window, total),
		SpendingTrends:       spendingTrends(now, window),
		BehaviorPatterns:     behaviorPatterns(now, window),
		Recommendations:      ag.recommender.Generate(now, window),
	}
	if len(window) > 0 {
		report.AveragePerActivity = total / float64(len(window))
	}
	return report
}

// categoryDistribution aggregates per-category statistics, ordered by total
// spend descending.
func (ag *Aggregator) categoryDistribution(window []classified, overallTotal float64) []CategoryInsight {
	groups := make(map[model.Category][]classified)
	for _, c := range window {
		groups[c.category] = append(groups[c.category], c)
	}

	out := make([]CategoryInsight, 0, len(groups))
	for category, members := range groups {
		total := totalAmount(members)
		insight := CategoryInsight{
			CategoryID:        category,
			CategoryName:      category.DisplayName(),
			ActivityCount:     len(members),
			TotalSpent:        total,
			PercentageOfTotal: percentage(total, overallTotal),
			Trend:             amountTrend(members),
			TopItems:          topItems(members),
		}
		if len(members) > 0 {
			insight.AveragePerActivity = total / float64(len(members))
		}
		out = append(out, insight)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSpent != out[j].TotalSpent {
			return out[i].TotalSpent > out[j].TotalSpent
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}

// artistDistribution aggregates per-artist statistics, ordered by total
// spend descending.
func (ag *Aggregator) artistDistribution(window []classified, overallTotal float64) []ArtistInsight {
	groups := make(map[string][]classified)
	for _, c := range window {
		groups[c.Artist()] = append(groups[c.Artist()], c)
	}

	out := make([]ArtistInsight, 0, len(groups))
	for artist, members := range groups {
		total := totalAmount(members)
		out = append(out, ArtistInsight{
			ArtistName:         artist,
			ActivityCount:      len(members),
			TotalSpent:         total,
			PercentageOfTotal:  percentage(total, overallTotal),
			CategoriesEngaged:  distinctCategories(members),
			EngagementScore:    engagementScore(members),
			Trend:              amountTrend(members),
			FavoriteCategories: favoriteCategories(members),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSpent != out[j].TotalSpent {
			return out[i].TotalSpent > out[j].TotalSpent
		}
		return out[i].ArtistName < out[j].ArtistName
	})
	return out
}

// engagementScore blends capped spend, frequency, and category diversity
// components.
func engagementScore(members []classified) float64 {
	spend := totalAmount(members) / engagementSpendDivisor
	if spend > engagementSpendCap {
		spend = engagementSpendCap
	}
	freq := float64(len(members)) / engagementCountDivisor
	if freq > engagementCountCap {
		freq = engagementCountCap
	}
	diversity := float64(len(distinctCategories(members)))
	if diversity > engagementDiversityCap {
		diversity = engagementDiversityCap
	}
	return spend + freq + diversity
}

// distinctCategories returns the set of categories engaged, in the fixed
// category order with the catch-all bucket last.
func distinctCategories(members []classified) []model.Category {
	seen := make(map[model.Category]bool, len(members))
	for _, m := range members {
		seen[m.category] = true
	}
	out := make([]model.Category, 0, len(seen))
	for _, c := range model.MainCategories {
		if seen[c] {
			out = append(out, c)
		}
	}
	if seen[model.CategoryOther] {
		out = append(out, model.CategoryOther)
	}
	return out
}

// favoriteCategories returns up to three display names ordered by activity
// frequency; frequency ties resolve by the fixed category order.
func favoriteCategories(members []classified) []string {
	counts := make(map[model.Category]int, len(members))
	for _, m := range members {
		counts[m.category]++
	}

	cats := make([]model.Category, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i].TieBreakRank() < cats[j].TieBreakRank()
	})

	if len(cats) > topItemCount {
		cats = cats[:topItemCount]
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.DisplayName()
	}
	return names
}

// amountTrend splits the activities into an earlier and a later half by
// timestamp and compares mean amounts. Fewer than two activities cannot
// trend.
func amountTrend(members []classified) TrendDirection {
	if len(members) < 2 {
		return TrendStable
	}

	sorted := make([]classified, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })

	mid := len(sorted) / 2
	earlier := meanAmount(sorted[:mid])
	later := meanAmount(sorted[len(sorted)-mid:])

	if earlier == 0 {
		if later > 0 {
			return TrendIncreasing
		}
		return TrendStable
	}

	change := (later - earlier) / earlier * 100
	switch {
	case change > trendChangePercent:
		return TrendIncreasing
	case change < -trendChangePercent:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// topItems returns the titles of the highest-amount activities, amount ties
// resolved by title so the order is reproducible.
func topItems(members []classified) []string {
	sorted := make([]classified, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Amount != sorted[j].Amount {
			return sorted[i].Amount > sorted[j].Amount
		}
		return sorted[i].Title < sorted[j].Title
	})
	if len(sorted) > topItemCount {
		sorted = sorted[:topItemCount]
	}
	titles := make([]string, len(sorted))
	for i, m := range sorted {
		titles[i] = m.Title
	}
	return titles
}

func totalAmount(members []classified) float64 {
	total := 0.0
	for _, m := range members {
		total += m.Amount
	}
	return total
}

func meanAmount(members []classified) float64 {
	if len(members) == 0 {
		return 0
	}
	return totalAmount(members) / float64(len(members))
}

// percentage guards the zero-total case.
func percentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
