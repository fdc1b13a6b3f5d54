// Package insights computes behavioral analytics over a window of fan
// activity: spending distributions, trends, behavior patterns, and the
// recommendations derived from them.
package insights

import (
	"time"

	"github.com/piggybong/fanplan/internal/domain/model"
)

// TrendDirection describes how a series of amounts moved over the window.
type TrendDirection string

// Trend directions.
const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// SpendingPersonality classifies the user's purchase behavior.
type SpendingPersonality string

// Spending personalities.
const (
	PersonalityImpulsive     SpendingPersonality = "impulsive"
	PersonalityPlanned       SpendingPersonality = "planned"
	PersonalityBargainHunter SpendingPersonality = "bargain_hunter"
	PersonalityPremium       SpendingPersonality = "premium"
	PersonalityBalanced      SpendingPersonality = "balanced"
)

// Description returns the user-facing label for the personality.
func (p SpendingPersonality) Description() string {
	switch p {
	case PersonalityImpulsive:
		return "Spontaneous Spender"
	case PersonalityPlanned:
		return "Strategic Planner"
	case PersonalityBargainHunter:
		return "Value Seeker"
	case PersonalityPremium:
		return "Premium Collector"
	default:
		return "Balanced Fan"
	}
}

// ActivityFrequency buckets how often the user records activity.
type ActivityFrequency string

// Activity frequency buckets.
const (
	FrequencyDaily      ActivityFrequency = "daily"
	FrequencyWeekly     ActivityFrequency = "weekly"
	FrequencyMonthly    ActivityFrequency = "monthly"
	FrequencyOccasional ActivityFrequency = "occasional"
)

// EngagementLevel buckets an artist loyalty score.
type EngagementLevel string

// Engagement levels, lowest first.
const (
	EngagementCasual   EngagementLevel = "casual"
	EngagementModerate EngagementLevel = "moderate"
	EngagementHigh     EngagementLevel = "high"
	EngagementSuperFan EngagementLevel = "super_fan"
)

// RecommendationType groups recommendations by the concern they address.
type RecommendationType string

// Recommendation types.
const (
	RecommendationBudget   RecommendationType = "budget"
	RecommendationCategory RecommendationType = "category"
	RecommendationArtist   RecommendationType = "artist"
	RecommendationTiming   RecommendationType = "timing"
)

// ImpactLevel grades how much a recommendation matters.
type ImpactLevel string

// Impact levels.
const (
	ImpactSignificant ImpactLevel = "significant"
	ImpactModerate    ImpactLevel = "moderate"
	ImpactMinimal     ImpactLevel = "minimal"
)

// CategoryInsight aggregates one category's activity over the window.
type CategoryInsight struct {
	CategoryID         model.Category `json:"category_id"`
	CategoryName       string         `json:"category_name"`
	ActivityCount      int            `json:"activity_count"`
	TotalSpent         float64        `json:"total_spent"`
	PercentageOfTotal  float64        `json:"percentage_of_total"`
	AveragePerActivity float64        `json:"average_per_activity"`
	Trend              TrendDirection `json:"trend"`
	TopItems           []string       `json:"top_items"`
}

// ArtistInsight aggregates one artist's activity over the window.
type ArtistInsight struct {
	ArtistName         string           `json:"artist_name"`
	ActivityCount      int              `json:"activity_count"`
	TotalSpent         float64          `json:"total_spent"`
	PercentageOfTotal  float64          `json:"percentage_of_total"`
	CategoriesEngaged  []model.Category `json:"categories_engaged"`
	EngagementScore    float64          `json:"engagement_score"`
	Trend              TrendDirection   `json:"trend"`
	FavoriteCategories []string         `json:"favorite_categories"`
}

// WeeklySpending is one bucket of the last-4-week trend series.
type WeeklySpending struct {
	WeekStart          time.Time `json:"week_start"`
	ActivityCount      int       `json:"activity_count"`
	TotalSpent         float64   `json:"total_spent"`
	AveragePerActivity float64   `json:"average_per_activity"`
}

// SpendingTrends captures spend movement over time.
type SpendingTrends struct {
	WeeklyTrends     []WeeklySpending `json:"weekly_trends"` // most recent first
	MonthlyGrowth    float64          `json:"monthly_growth"`
	PeakSpendingDay  string           `json:"peak_spending_day"`
	SpendingVelocity float64          `json:"spending_velocity"` // amount per day
}

// PriceRangePreference describes the interquartile band the user buys in.
type PriceRangePreference struct {
	PreferredMin float64 `json:"preferred_min"`
	PreferredMax float64 `json:"preferred_max"`
	Tolerance    float64 `json:"tolerance"`
}

// TemporalPattern captures when the user tends to be active.
type TemporalPattern struct {
	PreferredDays []string `json:"preferred_days"`
}

// ArtistLoyalty scores the attachment to one artist.
type ArtistLoyalty struct {
	ArtistName      string          `json:"artist_name"`
	LoyaltyScore    float64         `json:"loyalty_score"`
	EngagementLevel EngagementLevel `json:"engagement_level"`
}

// BehaviorPatterns summarizes the user's purchase behavior.
type BehaviorPatterns struct {
	SpendingPersonality SpendingPersonality  `json:"spending_personality"`
	PreferredCategories []string             `json:"preferred_categories"`
	ActivityFrequency   ActivityFrequency    `json:"activity_frequency"`
	PriceRange          PriceRangePreference `json:"price_range"`
	TemporalPattern     TemporalPattern      `json:"temporal_pattern"`
	LoyaltyScores       []ArtistLoyalty      `json:"loyalty_scores"`
}

// Recommendation is one actionable suggestion derived from the analysis.
type Recommendation struct {
	Type           RecommendationType `json:"type"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Impact         ImpactLevel        `json:"impact"`
	ActionRequired string             `json:"action_required,omitempty"`
}

// Report is the full analytics report for one window. It is plain data,
// serializable as JSON for the UI layer.
type Report struct {
	TimeframeDays        int               `json:"timeframe_days"`
	TotalActivities      int               `json:"total_activities"`
	TotalSpent           float64           `json:"total_spent"`
	AveragePerActivity   float64           `json:"average_per_activity"`
	CategoryDistribution []CategoryInsight `json:"category_distribution"`
	ArtistDistribution   []ArtistInsight   `json:"artist_distribution"`
	SpendingTrends       SpendingTrends    `json:"spending_trends"`
	BehaviorPatterns     BehaviorPatterns  `json:"behavior_patterns"`
	Recommendations      []Recommendation  `json:"recommendations"`
}
