package categorize

import (
	"testing"
	"time"

	"github.com/piggybong/fanplan/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategorize(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	old := now.Add(-30 * 24 * time.Hour)

	Convey("Given a categorizer with the default tables", t, func() {
		cz := New()

		Convey("When the activity carries an explicit category", func() {
			a := model.Activity{
				Title:     "BTS World Tour Ticket",
				Amount:    150,
				Timestamp: old,
			}.WithCategory(model.CategoryAlbums)

			Convey("Then the explicit category is honored over any keyword signal", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryAlbums)
			})
		})

		Convey("When the text carries strong concert keywords", func() {
			a := model.Activity{
				ArtistName: "BTS",
				Title:      "BTS World Tour Ticket",
				Amount:     150,
				Timestamp:  old,
			}

			Convey("Then it lands in concerts", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryConcerts)
			})
		})

		Convey("When the text points at a platform membership", func() {
			a := model.Activity{
				Title:     "Weverse Membership",
				Amount:    5,
				Timestamp: old,
			}

			Convey("Then it lands in subscriptions", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategorySubscriptions)
			})
		})

		Convey("When no keyword matches and context is neutral", func() {
			a := model.Activity{
				ArtistName: "Somebody",
				Title:      "Spontaneous Treat",
				Amount:     50,
				Timestamp:  old,
			}

			Convey("Then the categorizer falls back to merch", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryMerch)
			})
		})

		Convey("When only the price band carries signal", func() {
			a := model.Activity{
				Title:     "Surprise Purchase",
				Amount:    150,
				Timestamp: old,
			}

			Convey("Then the high-price boost is enough to pick concerts", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryConcerts)
			})

			Convey("And a cheap purchase with a subscription hint picks subscriptions", func() {
				b := model.Activity{Title: "Bubble", Amount: 5, Timestamp: old}
				So(cz.Categorize(b, now), ShouldEqual, model.CategorySubscriptions)
			})
		})

		Convey("When two categories score identically", func() {
			a := model.Activity{
				Title:     "Live Stream",
				Amount:    50,
				Timestamp: old,
			}

			Convey("Then the fixed category order breaks the tie, every run", func() {
				for i := 0; i < 10; i++ {
					So(cz.Categorize(a, now), ShouldEqual, model.CategoryConcerts)
				}
			})

			Convey("And the same text a few days old tips toward events", func() {
				recent := a
				recent.Timestamp = now.Add(-2 * 24 * time.Hour)
				So(cz.Categorize(recent, now), ShouldEqual, model.CategoryEvents)
			})
		})

		Convey("When only the artist allow-list boost applies", func() {
			a := model.Activity{
				ArtistName: "BTS",
				Title:      "Surprise Purchase",
				Amount:     50,
				Timestamp:  old,
			}

			Convey("Then the boost alone does not clear the minimum and merch wins", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryMerch)
			})
		})
	})

	Convey("Given a categorizer with overridden tables", t, func() {
		cz := New(
			WithKeywords(model.CategoryConcerts, map[string]float64{"gig": 5.0}),
			WithHighProfileArtists([]string{"newjeans"}),
		)

		Convey("When the custom phrase matches", func() {
			a := model.Activity{Title: "Gig Night", Amount: 50, Timestamp: old}

			Convey("Then the replaced table drives the result", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryConcerts)
			})
		})

		Convey("When the stock phrase no longer exists in the table", func() {
			a := model.Activity{Title: "Concert", Amount: 50, Timestamp: old}

			Convey("Then the activity falls back to merch", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryMerch)
			})
		})

		Convey("When the custom allow-list artist buys something expensive", func() {
			a := model.Activity{
				ArtistName: "NewJeans",
				Title:      "Surprise Purchase",
				Amount:     150,
				Timestamp:  old,
			}

			Convey("Then the combined boosts pick concerts", func() {
				So(cz.Categorize(a, now), ShouldEqual, model.CategoryConcerts)
			})
		})
	})
}

func TestContentScores(t *testing.T) {
	Convey("Given the default keyword tables", t, func() {
		cz := New()

		Convey("When a phrase appears in the title", func() {
			a := model.Activity{Title: "Lightstick", Description: ""}
			scores := cz.contentScores(a)

			Convey("Then the title bonus is added on top of the base weight", func() {
				So(scores[model.CategoryMerch], ShouldAlmostEqual, 3.0+3.0*titleMatchBonus)
			})
		})

		Convey("When a phrase appears only in the description", func() {
			a := model.Activity{Title: "Order #1931", Description: "lightstick for the encore"}
			scores := cz.contentScores(a)

			Convey("Then only the base weight counts", func() {
				So(scores[model.CategoryMerch], ShouldAlmostEqual, 3.0)
			})
		})

		Convey("When several phrases from one table match", func() {
			a := model.Activity{Title: "Concert Ticket"}
			scores := cz.contentScores(a)

			Convey("Then each extra match adds the multi-match bonus", func() {
				want := (3.0 + 3.0*titleMatchBonus) + (2.5 + 2.5*titleMatchBonus) + multiMatchBonus
				So(scores[model.CategoryConcerts], ShouldAlmostEqual, want)
			})
		})
	})
}
