package recency

import (
	"testing"
	"time"

	"github.com/piggybong/fanplan/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWeight(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	at := func(daysAgo float64) model.Activity {
		return model.Activity{Timestamp: now.Add(-time.Duration(daysAgo * 24 * float64(time.Hour)))}
	}

	Convey("Given the decay multiplier", t, func() {
		Convey("When the activity set is empty", func() {
			Convey("Then the weight is neutral", func() {
				So(Weight(now, nil), ShouldEqual, neutralWeight)
			})
		})

		Convey("When a single activity happened just now", func() {
			Convey("Then the weight is exactly one", func() {
				So(Weight(now, []model.Activity{at(0)}), ShouldAlmostEqual, 1.0)
			})
		})

		Convey("When a single activity is ten days old", func() {
			Convey("Then the weight sits at the half-life value", func() {
				So(Weight(now, []model.Activity{at(10)}), ShouldAlmostEqual, 0.5)
			})
		})

		Convey("When an activity is far in the past", func() {
			Convey("Then the lower clamp holds", func() {
				So(Weight(now, []model.Activity{at(90)}), ShouldAlmostEqual, minWeight)
			})
		})

		Convey("When an activity carries a future timestamp", func() {
			Convey("Then the upper clamp holds", func() {
				So(Weight(now, []model.Activity{at(-90)}), ShouldAlmostEqual, maxWeight)
			})
		})

		Convey("When the set mixes fresh and stale activities", func() {
			acts := []model.Activity{at(0), at(10)}

			Convey("Then the weight is the mean of the individual weights", func() {
				So(Weight(now, acts), ShouldAlmostEqual, 0.75)
			})
		})

		Convey("When comparing two sets of different freshness", func() {
			fresh := []model.Activity{at(1), at(2)}
			stale := []model.Activity{at(20), at(25)}

			Convey("Then the fresher set weighs more", func() {
				So(Weight(now, fresh), ShouldBeGreaterThan, Weight(now, stale))
			})
		})
	})
}
