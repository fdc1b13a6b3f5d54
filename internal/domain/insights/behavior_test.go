package insights

import (
	"testing"

	"github.com/piggybong/fanplan/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func amounts(vals ...float64) []classified {
	out := make([]classified, len(vals))
	for i, v := range vals {
		out[i] = cl(model.CategoryMerch, v, daysAgo(float64(i+1)))
	}
	return out
}

func TestSpendingPersonality(t *testing.T) {
	Convey("Given the personality classifier", t, func() {
		Convey("When the window is empty", func() {
			So(spendingPersonality(nil), ShouldEqual, PersonalityBalanced)
		})

		Convey("When amounts swing wildly", func() {
			So(spendingPersonality(amounts(10, 200, 10, 200)), ShouldEqual, PersonalityImpulsive)
		})

		Convey("When most purchases are high value", func() {
			So(spendingPersonality(amounts(150, 150, 150, 50)), ShouldEqual, PersonalityPremium)
		})

		Convey("When the mean stays cheap", func() {
			So(spendingPersonality(amounts(10, 12, 14)), ShouldEqual, PersonalityBargainHunter)
		})

		Convey("When amounts barely vary", func() {
			So(spendingPersonality(amounts(100, 100, 100, 100)), ShouldEqual, PersonalityPlanned)
		})

		Convey("When nothing stands out", func() {
			So(spendingPersonality(amounts(40, 60, 80, 100)), ShouldEqual, PersonalityBalanced)
		})

		Convey("When describing each personality", func() {
			So(PersonalityImpulsive.Description(), ShouldEqual, "Spontaneous Spender")
			So(PersonalityPlanned.Description(), ShouldEqual, "Strategic Planner")
			So(PersonalityBargainHunter.Description(), ShouldEqual, "Value Seeker")
			So(PersonalityPremium.Description(), ShouldEqual, "Premium Collector")
			So(PersonalityBalanced.Description(), ShouldEqual, "Balanced Fan")
		})
	})
}

func TestActivityFrequency(t *testing.T) {
	Convey("Given the frequency buckets", t, func() {
		Convey("When the window is empty", func() {
			So(activityFrequency(testNow, nil), ShouldEqual, FrequencyOccasional)
		})

		Convey("When five activities span five days", func() {
			window := []classified{
				cl(model.CategoryMerch, 10, daysAgo(5)),
				cl(model.CategoryMerch, 10, daysAgo(4)),
				cl(model.CategoryMerch, 10, daysAgo(3)),
				cl(model.CategoryMerch, 10, daysAgo(2)),
				cl(model.CategoryMerch, 10, daysAgo(1)),
			}
			So(activityFrequency(testNow, window), ShouldEqual, FrequencyDaily)
		})

		Convey("When four activities span twenty days", func() {
			window := []classified{
				cl(model.CategoryMerch, 10, daysAgo(20)),
				cl(model.CategoryMerch, 10, daysAgo(14)),
				cl(model.CategoryMerch, 10, daysAgo(7)),
				cl(model.CategoryMerch, 10, daysAgo(1)),
			}
			So(activityFrequency(testNow, window), ShouldEqual, FrequencyWeekly)
		})

		Convey("When two activities span a month", func() {
			window := []classified{
				cl(model.CategoryMerch, 10, daysAgo(28)),
				cl(model.CategoryMerch, 10, daysAgo(2)),
			}
			So(activityFrequency(testNow, window), ShouldEqual, FrequencyMonthly)
		})

		Convey("When one stale activity stands alone", func() {
			window := []classified{cl(model.CategoryMerch, 10, daysAgo(90))}
			So(activityFrequency(testNow, window), ShouldEqual, FrequencyOccasional)
		})
	})
}

func TestPriceRangePreference(t *testing.T) {
	Convey("Given the price band preference", t, func() {
		Convey("When the window is empty", func() {
			So(priceRangePreference(nil), ShouldResemble, PriceRangePreference{})
		})

		Convey("When four amounts spread evenly", func() {
			pref := priceRangePreference(amounts(40, 10, 30, 20))

			Convey("Then the interquartile band and tolerance come back", func() {
				So(pref.PreferredMin, ShouldAlmostEqual, 20.0)
				So(pref.PreferredMax, ShouldAlmostEqual, 40.0)
				So(pref.Tolerance, ShouldAlmostEqual, 20.0)
			})
		})

		Convey("When all amounts are identical", func() {
			pref := priceRangePreference(amounts(25, 25, 25, 25))

			So(pref.PreferredMin, ShouldAlmostEqual, 25.0)
			So(pref.PreferredMax, ShouldAlmostEqual, 25.0)
			So(pref.Tolerance, ShouldEqual, 0)
		})
	})
}

func TestTemporalPattern(t *testing.T) {
	Convey("Given activity spread over weekdays", t, func() {
		// daysAgo(1) is Friday, daysAgo(3) Wednesday, daysAgo(6) Sunday,
		// daysAgo(5) Monday relative to the Saturday reference time.
		window := []classified{
			cl(model.CategoryMerch, 10, daysAgo(1)),
			cl(model.CategoryMerch, 10, daysAgo(8)),
			cl(model.CategoryMerch, 10, daysAgo(15)),
			cl(model.CategoryAlbums, 10, daysAgo(3)),
			cl(model.CategoryAlbums, 10, daysAgo(10)),
			cl(model.CategoryEvents, 10, daysAgo(6)),
			cl(model.CategoryEvents, 10, daysAgo(5)),
		}

		Convey("When the pattern is computed", func() {
			pattern := temporalPattern(window)

			Convey("Then the three busiest days come back, ties by week order", func() {
				So(pattern.PreferredDays, ShouldResemble, []string{"Friday", "Wednesday", "Sunday"})
			})
		})

		Convey("When the window is empty", func() {
			So(temporalPattern(nil).PreferredDays, ShouldBeEmpty)
		})
	})
}

func TestLoyaltyScores(t *testing.T) {
	Convey("Given activity across several artists", t, func() {
		mk := func(artist string, count int, each float64) []classified {
			out := make([]classified, count)
			for i := range out {
				out[i] = classified{
					Activity: model.Activity{ArtistName: artist, Amount: each, Timestamp: daysAgo(float64(i + 1))},
					category: model.CategoryMerch,
				}
			}
			return out
		}

		window := mk("Stray Kids", 20, 50)
		window = append(window, mk("NewJeans", 10, 100)...)
		window = append(window, mk("TWICE", 1, 10)...)

		Convey("When loyalty is scored", func() {
			scores := loyaltyScores(window)

			Convey("Then artists order by score descending", func() {
				So(scores, ShouldHaveLength, 3)
				So(scores[0].ArtistName, ShouldEqual, "Stray Kids")
				So(scores[1].ArtistName, ShouldEqual, "NewJeans")
				So(scores[2].ArtistName, ShouldEqual, "TWICE")
			})

			Convey("Then the score blends count and spend", func() {
				So(scores[0].LoyaltyScore, ShouldAlmostEqual, 20*2.0+1000.0/100.0)
				So(scores[2].LoyaltyScore, ShouldAlmostEqual, 2.1)
			})

			Convey("Then engagement levels bucket the scores", func() {
				So(scores[0].EngagementLevel, ShouldEqual, EngagementSuperFan)
				So(scores[1].EngagementLevel, ShouldEqual, EngagementHigh)
				So(scores[2].EngagementLevel, ShouldEqual, EngagementCasual)
			})
		})
	})

	Convey("Given the level buckets directly", t, func() {
		So(engagementLevel(5.0), ShouldEqual, EngagementCasual)
		So(engagementLevel(5.1), ShouldEqual, EngagementModerate)
		So(engagementLevel(15.1), ShouldEqual, EngagementHigh)
		So(engagementLevel(30.1), ShouldEqual, EngagementSuperFan)
	})
}
