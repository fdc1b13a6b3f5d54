package insights

import (
	"sort"
	"time"
)

// Trend window constants.
const (
	weeklyBucketCount = 4
	weekLength        = 7 * hoursPerDay * time.Hour
)

// weekdayOrder fixes the iteration order used when picking peak or
// preferred weekdays, so ties never depend on map order.
var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// spendingTrends computes the time-based view of the window: the last four
// weekly buckets (most recent first), calendar month-over-month growth, the
// peak spending weekday, and the per-day spending velocity.
func spendingTrends(now time.Time, window []classified) SpendingTrends {
	return SpendingTrends{
		WeeklyTrends:     weeklyTrends(now, window),
		MonthlyGrowth:    monthlyGrowth(now, window),
		PeakSpendingDay:  peakSpendingDay(window),
		SpendingVelocity: spendingVelocity(window),
	}
}

// weeklyTrends buckets the last four weeks relative to now. Bucket k covers
// [now-(k+1)w, now-kw); k=0 is the current week and comes first.
func weeklyTrends(now time.Time, window []classified) []WeeklySpending {
	trends := make([]WeeklySpending, 0, weeklyBucketCount)
	for k := 0; k < weeklyBucketCount; k++ {
		start := now.Add(-time.Duration(k+1) * weekLength)
		end := now.Add(-time.Duration(k) * weekLength)

		week := WeeklySpending{WeekStart: start}
		for _, m := range window {
			if m.Timestamp.Before(start) || !m.Timestamp.Before(end) {
				continue
			}
			week.ActivityCount++
			week.TotalSpent += m.Amount
		}
		if week.ActivityCount > 0 {
			week.AveragePerActivity = week.TotalSpent / float64(week.ActivityCount)
		}
		trends = append(trends, week)
	}
	return trends
}

// monthlyGrowth compares spend in the calendar month of now against the
// previous calendar month. No prior-month spend means no growth figure.
func monthlyGrowth(now time.Time, window []classified) float64 {
	prev := now.AddDate(0, -1, 0)

	thisMonth, lastMonth := 0.0, 0.0
	for _, m := range window {
		switch {
		case sameMonth(m.Timestamp, now):
			thisMonth += m.Amount
		case sameMonth(m.Timestamp, prev):
			lastMonth += m.Amount
		}
	}
	if lastMonth <= 0 {
		return 0
	}
	return (thisMonth - lastMonth) / lastMonth * 100
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// peakSpendingDay returns the weekday name carrying the highest total
// spend, or "Unknown" when the window is empty. Ties resolve to the
// earliest weekday in the week.
func peakSpendingDay(window []classified) string {
	if len(window) == 0 {
		return "Unknown"
	}

	spend := make(map[time.Weekday]float64)
	seen := make(map[time.Weekday]bool)
	for _, m := range window {
		day := m.Timestamp.Weekday()
		spend[day] += m.Amount
		seen[day] = true
	}

	var peak time.Weekday
	found := false
	for _, day := range weekdayOrder {
		if !seen[day] {
			continue
		}
		if !found || spend[day] > spend[peak] {
			peak, found = day, true
		}
	}
	return peak.String()
}

// spendingVelocity is total spend divided by the day span between the
// oldest and newest activity. A single activity has no span.
func spendingVelocity(window []classified) float64 {
	if len(window) < 2 {
		return 0
	}

	sorted := make([]classified, len(window))
	copy(sorted, window)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })

	spanDays := sorted[len(sorted)-1].Timestamp.Sub(sorted[0].Timestamp).Hours() / hoursPerDay
	if spanDays <= 0 {
		return 0
	}
	return totalAmount(window) / spanDays
}
