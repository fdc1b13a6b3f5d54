package insights

import (
	"math"
	"sort"
	"time"
)

// Behavior classification constants.
const (
	// Personality cutoffs, evaluated in precedence order.
	impulsiveStddevRatio = 0.8 // stddev above this share of the mean reads as impulsive
	premiumHighRatio     = 0.5 // share of >$100 purchases that reads as premium
	bargainMeanAmount    = 30.0
	plannedStddevRatio   = 0.3
	highValueAmount      = 100.0

	// Frequency buckets by mean days between activities.
	dailyMaxGap   = 2.0
	weeklyMaxGap  = 7.0
	monthlyMaxGap = 30.0

	// Loyalty score: count*2 + spend/100, bucketed below.
	loyaltyCountWeight  = 2.0
	loyaltySpendDivisor = 100.0
	loyaltyCasualMax    = 5.0
	loyaltyModerateMax  = 15.0
	loyaltyHighMax      = 30.0

	preferredDayCount = 3
)

// behaviorPatterns derives the behavioral summary for the window.
func behaviorPatterns(now time.Time, window []classified) BehaviorPatterns {
	return BehaviorPatterns{
		SpendingPersonality: spendingPersonality(window),
		PreferredCategories: favoriteCategories(window),
		ActivityFrequency:   activityFrequency(now, window),
		PriceRange:          priceRangePreference(window),
		TemporalPattern:     temporalPattern(window),
		LoyaltyScores:       loyaltyScores(window),
	}
}

// spendingPersonality classifies purchase behavior. The checks run in a
// fixed precedence: volatility first, then the high-value share, then the
// bargain and planned bands, with balanced as the remainder.
func spendingPersonality(window []classified) SpendingPersonality {
	if len(window) == 0 {
		return PersonalityBalanced
	}

	mean := meanAmount(window)
	variance := 0.0
	highValue := 0
	for _, m := range window {
		diff := m.Amount - mean
		variance += diff * diff
		if m.Amount > highValueAmount {
			highValue++
		}
	}
	stddev := math.Sqrt(variance / float64(len(window)))
	highValueRatio := float64(highValue) / float64(len(window))

	switch {
	case stddev > mean*impulsiveStddevRatio:
		return PersonalityImpulsive
	case highValueRatio > premiumHighRatio:
		return PersonalityPremium
	case mean < bargainMeanAmount:
		return PersonalityBargainHunter
	case stddev < mean*plannedStddevRatio:
		return PersonalityPlanned
	default:
		return PersonalityBalanced
	}
}

// activityFrequency buckets the mean gap between activities, measured from
// the oldest activity to now.
func activityFrequency(now time.Time, window []classified) ActivityFrequency {
	if len(window) == 0 {
		return FrequencyOccasional
	}

	oldest := window[0].Timestamp
	for _, m := range window[1:] {
		if m.Timestamp.Before(oldest) {
			oldest = m.Timestamp
		}
	}

	spanDays := now.Sub(oldest).Hours() / hoursPerDay
	gap := spanDays / float64(len(window))
	switch {
	case gap <= dailyMaxGap:
		return FrequencyDaily
	case gap <= weeklyMaxGap:
		return FrequencyWeekly
	case gap <= monthlyMaxGap:
		return FrequencyMonthly
	default:
		return FrequencyOccasional
	}
}

// priceRangePreference reports the interquartile band of purchase amounts
// with the IQR as tolerance.
func priceRangePreference(window []classified) PriceRangePreference {
	if len(window) == 0 {
		return PriceRangePreference{}
	}

	amounts := make([]float64, len(window))
	for i, m := range window {
		amounts[i] = m.Amount
	}
	sort.Float64s(amounts)

	q25 := amounts[len(amounts)/4]
	q75 := amounts[len(amounts)*3/4]
	return PriceRangePreference{
		PreferredMin: q25,
		PreferredMax: q75,
		Tolerance:    q75 - q25,
	}
}

// temporalPattern finds the up-to-three weekdays the user is most active
// on; count ties resolve to the earlier weekday.
func temporalPattern(window []classified) TemporalPattern {
	counts := make(map[time.Weekday]int)
	for _, m := range window {
		counts[m.Timestamp.Weekday()]++
	}

	days := make([]time.Weekday, 0, len(counts))
	for _, day := range weekdayOrder {
		if counts[day] > 0 {
			days = append(days, day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool { return counts[days[i]] > counts[days[j]] })

	if len(days) > preferredDayCount {
		days = days[:preferredDayCount]
	}
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	return TemporalPattern{PreferredDays: names}
}

// loyaltyScores ranks artists by a blend of activity count and spend,
// bucketed into engagement levels.
func loyaltyScores(window []classified) []ArtistLoyalty {
	type tally struct {
		count int
		spent float64
	}
	artists := make(map[string]*tally)
	for _, m := range window {
		t, ok := artists[m.Artist()]
		if !ok {
			t = &tally{}
			artists[m.Artist()] = t
		}
		t.count++
		t.spent += m.Amount
	}

	out := make([]ArtistLoyalty, 0, len(artists))
	for name, t := range artists {
		score := float64(t.count)*loyaltyCountWeight + t.spent/loyaltySpendDivisor
		out = append(out, ArtistLoyalty{
			ArtistName:      name,
			LoyaltyScore:    score,
			EngagementLevel: engagementLevel(score),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LoyaltyScore != out[j].LoyaltyScore {
			return out[i].LoyaltyScore > out[j].LoyaltyScore
		}
		return out[i].ArtistName < out[j].ArtistName
	})
	return out
}

// engagementLevel buckets a loyalty score.
func engagementLevel(score float64) EngagementLevel {
	switch {
	case score <= loyaltyCasualMax:
		return EngagementCasual
	case score <= loyaltyModerateMax:
		return EngagementModerate
	case score <= loyaltyHighMax:
		return EngagementHigh
	default:
		return EngagementSuperFan
	}
}
