package insights

import (
	"fmt"
	"time"

	"github.com/piggybong/fanplan/internal/domain/model"
	"github.com/piggybong/fanplan/pkg/metrics"
)

// Recommendation rule constants.
const (
	// Budget rules read a monthly average assuming four weeks of data.
	monthlyAverageWeeks    = 4.0
	highSpendingMonthly    = 500.0
	budgetRoomMonthly      = 50.0
	minActivitiesForRules  = 5
	recentWindow           = 7 * hoursPerDay * time.Hour
	paceRecentLimit        = 5
	albumDominanceFraction = 2 // albums dominate when count exceeds total/2
)

// Recommender derives the recommendation list from a classified window.
// Every rule is evaluated independently; all applicable recommendations
// are returned.
type Recommender struct{}

// NewRecommender creates a Recommender.
func NewRecommender() *Recommender {
	return &Recommender{}
}

// Generate evaluates the budget, category, artist, and timing rule
// families against the window.
func (r *Recommender) Generate(now time.Time, window []classified) []Recommendation {
	recs := make([]Recommendation, 0)
	recs = append(recs, r.budgetRules(window)...)
	recs = append(recs, r.categoryRules(window)...)
	recs = append(recs, r.artistRules(window)...)
	recs = append(recs, r.timingRules(now, window)...)

	for _, rec := range recs {
		metrics.RecordRecommendation(string(rec.Type))
	}
	return recs
}

func (r *Recommender) budgetRules(window []classified) []Recommendation {
	monthlyAverage := totalAmount(window) / monthlyAverageWeeks

	var recs []Recommendation
	if monthlyAverage > highSpendingMonthly {
		recs = append(recs, Recommendation{
			Type:           RecommendationBudget,
			Title:          "High Spending Alert",
			Description:    fmt.Sprintf("You're spending $%d/month on fan activities. Consider setting a monthly budget.", int(monthlyAverage)),
			Impact:         ImpactSignificant,
			ActionRequired: "Set a monthly spending limit",
		})
	} else if monthlyAverage < budgetRoomMonthly {
		recs = append(recs, Recommendation{
			Type:        RecommendationBudget,
			Title:       "Budget Opportunity",
			Description: "You have room to explore more fan activities within a reasonable budget.",
			Impact:      ImpactModerate,
		})
	}
	return recs
}

func (r *Recommender) categoryRules(window []classified) []Recommendation {
	counts := make(map[model.Category]int)
	for _, m := range window {
		counts[m.category]++
	}

	var recs []Recommendation
	if counts[model.CategoryConcerts] == 0 && len(window) > minActivitiesForRules {
		recs = append(recs, Recommendation{
			Type:           RecommendationCategory,
			Title:          "Concert Experience Missing",
			Description:    "You haven't attended any concerts recently. Live performances create unforgettable memories!",
			Impact:         ImpactSignificant,
			ActionRequired: "Look for upcoming concerts",
		})
	}
	if counts[model.CategoryAlbums] > len(window)/albumDominanceFraction {
		recs = append(recs, Recommendation{
			Type:           RecommendationCategory,
			Title:          "Diversify Your Collection",
			Description:    "Most of your spending is on albums. Try exploring merchandise or fan events!",
			Impact:         ImpactModerate,
			ActionRequired: "Explore other categories",
		})
	}
	return recs
}

func (r *Recommender) artistRules(window []classified) []Recommendation {
	artists := make(map[string]bool)
	for _, m := range window {
		artists[m.Artist()] = true
	}

	var recs []Recommendation
	if len(artists) == 1 {
		recs = append(recs, Recommendation{
			Type:           RecommendationArtist,
			Title:          "Discover New Artists",
			Description:    "You're focused on one artist. Exploring other acts might introduce you to amazing new music!",
			Impact:         ImpactModerate,
			ActionRequired: "Try activities for new artists",
		})
	}
	return recs
}

func (r *Recommender) timingRules(now time.Time, window []classified) []Recommendation {
	recent := 0
	for _, m := range window {
		if now.Sub(m.Timestamp) < recentWindow {
			recent++
		}
	}

	var recs []Recommendation
	if recent > paceRecentLimit {
		recs = append(recs, Recommendation{
			Type:           RecommendationTiming,
			Title:          "Pace Your Spending",
			Description:    "You've been very active this week. Consider spacing out purchases to avoid impulse buying.",
			Impact:         ImpactModerate,
			ActionRequired: "Wait 24 hours before next purchase",
		})
	} else if recent == 0 && len(window) > 0 {
		recs = append(recs, Recommendation{
			Type:           RecommendationTiming,
			Title:          "Stay Engaged",
			Description:    "You haven't been active lately. Check for new releases or upcoming events!",
			Impact:         ImpactMinimal,
			ActionRequired: "Browse recent fan news",
		})
	}
	return recs
}
