package insights

import (
	"strings"
	"testing"

	"github.com/piggybong/fanplan/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func recTitles(recs []Recommendation) []string {
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	return titles
}

func TestBudgetRules(t *testing.T) {
	Convey("Given the budget rule family", t, func() {
		r := NewRecommender()

		Convey("When monthly spend runs high", func() {
			window := amounts(800, 800, 800)
			recs := r.budgetRules(window)

			Convey("Then the alert carries the rounded monthly figure", func() {
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Title, ShouldEqual, "High Spending Alert")
				So(recs[0].Type, ShouldEqual, RecommendationBudget)
				So(recs[0].Impact, ShouldEqual, ImpactSignificant)
				So(strings.Contains(recs[0].Description, "$600/month"), ShouldBeTrue)
			})
		})

		Convey("When monthly spend leaves budget room", func() {
			recs := r.budgetRules(amounts(40, 60))

			So(recTitles(recs), ShouldContain, "Budget Opportunity")
		})

		Convey("When spend sits between the bands", func() {
			recs := r.budgetRules(amounts(400, 400))

			So(recs, ShouldBeEmpty)
		})
	})
}

func TestCategoryRules(t *testing.T) {
	Convey("Given the category rule family", t, func() {
		r := NewRecommender()

		noConcerts := func(n int) []classified {
			out := make([]classified, n)
			for i := range out {
				out[i] = cl(model.CategoryMerch, 20, daysAgo(float64(i+1)))
			}
			return out
		}

		Convey("When an active window has no concerts", func() {
			recs := r.categoryRules(noConcerts(6))

			So(recTitles(recs), ShouldContain, "Concert Experience Missing")
		})

		Convey("When the window is too small to judge", func() {
			recs := r.categoryRules(noConcerts(5))

			So(recTitles(recs), ShouldNotContain, "Concert Experience Missing")
		})

		Convey("When at least one concert exists", func() {
			window := append(noConcerts(6), cl(model.CategoryConcerts, 150, daysAgo(2)))
			recs := r.categoryRules(window)

			So(recTitles(recs), ShouldNotContain, "Concert Experience Missing")
		})

		Convey("When albums dominate the window", func() {
			window := []classified{
				cl(model.CategoryAlbums, 25, daysAgo(1)),
				cl(model.CategoryAlbums, 25, daysAgo(2)),
				cl(model.CategoryAlbums, 25, daysAgo(3)),
				cl(model.CategoryMerch, 25, daysAgo(4)),
			}
			recs := r.categoryRules(window)

			So(recTitles(recs), ShouldContain, "Diversify Your Collection")
		})
	})
}

func TestArtistRules(t *testing.T) {
	Convey("Given the artist rule family", t, func() {
		r := NewRecommender()

		one := []classified{
			{Activity: model.Activity{ArtistName: "aespa", Amount: 30, Timestamp: daysAgo(1)}, category: model.CategoryAlbums},
			{Activity: model.Activity{ArtistName: "aespa", Amount: 30, Timestamp: daysAgo(2)}, category: model.CategoryMerch},
		}

		Convey("When every activity belongs to one artist", func() {
			So(recTitles(r.artistRules(one)), ShouldContain, "Discover New Artists")
		})

		Convey("When a second artist appears", func() {
			window := append(one, classified{
				Activity: model.Activity{ArtistName: "ITZY", Amount: 30, Timestamp: daysAgo(3)},
				category: model.CategoryAlbums,
			})

			So(r.artistRules(window), ShouldBeEmpty)
		})
	})
}

func TestTimingRules(t *testing.T) {
	Convey("Given the timing rule family", t, func() {
		r := NewRecommender()

		Convey("When the last week is crowded", func() {
			window := make([]classified, 6)
			for i := range window {
				window[i] = cl(model.CategoryMerch, 20, daysAgo(float64(i)+0.5))
			}
			recs := r.timingRules(testNow, window)

			So(recTitles(recs), ShouldContain, "Pace Your Spending")
		})

		Convey("When the window holds only stale activity", func() {
			window := []classified{
				cl(model.CategoryAlbums, 20, daysAgo(12)),
				cl(model.CategoryAlbums, 20, daysAgo(15)),
			}
			recs := r.timingRules(testNow, window)

			So(recTitles(recs), ShouldContain, "Stay Engaged")
			So(recs[0].Impact, ShouldEqual, ImpactMinimal)
		})

		Convey("When the window is empty", func() {
			So(r.timingRules(testNow, nil), ShouldBeEmpty)
		})

		Convey("When recent activity sits at a normal pace", func() {
			window := []classified{
				cl(model.CategoryAlbums, 20, daysAgo(2)),
				cl(model.CategoryAlbums, 20, daysAgo(12)),
			}

			So(r.timingRules(testNow, window), ShouldBeEmpty)
		})
	})
}
