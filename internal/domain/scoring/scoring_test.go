package scoring_test

import (
	"testing"

	"github.com/carpilot/carpilot/internal/domain/model"
	"github.com/carpilot/carpilot/internal/domain/scoring"
	"github.com/carpilot/carpilot/internal/domain/weights"
	. "github.com/smartystreets/goconvey/convey"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func car(name string, price float64, seats int, fuel, body string, norms map[string]float64) model.Car {
	return model.Car{
		Name:         name,
		Brand:        "Test",
		PriceMinLakh: price,
		Seats:        seats,
		FuelType:     fuel,
		BodyType:     body,
		Norms:        norms,
	}
}

func TestRankFiltering(t *testing.T) {
	Convey("Given a small dataset and an empty weight vector", t, func() {
		cars := []model.Car{
			car("Cheap Hatch", 6, 5, "Petrol", "Hatchback", nil),
			car("Mid SUV", 15, 7, "Diesel", "SUV", nil),
			car("Lux Sedan", 60, 5, "Petrol", "Sedan", nil),
			car("City EV", 12, 5, "EV", "Hatchback", nil),
		}
		w := map[string]float64{}

		Convey("When no constraints are set", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{})

			Convey("Then every row survives in dataset order", func() {
				So(got, ShouldHaveLength, 4)
				So(got[0].Name, ShouldEqual, "Cheap Hatch")
				So(got[3].Name, ShouldEqual, "City EV")
			})
		})

		Convey("When a budget cap is set", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{Budget: floatPtr(12)})

			Convey("Then rows above the cap are dropped and the boundary is inclusive", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Name, ShouldEqual, "Cheap Hatch")
				So(got[1].Name, ShouldEqual, "City EV")
			})
		})

		Convey("When a minimum seat count is set", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{MinSeats: intPtr(7)})

			So(got, ShouldHaveLength, 1)
			So(got[0].Name, ShouldEqual, "Mid SUV")
		})

		Convey("When fuel and body types are matched case-insensitively", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{FuelType: "ev", BodyType: "hatchback"})

			So(got, ShouldHaveLength, 1)
			So(got[0].Name, ShouldEqual, "City EV")
		})

		Convey("When constraints combine", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{
				Budget:   floatPtr(20),
				BodyType: "hatchback",
				MinSeats: intPtr(5),
			})

			Convey("Then all of them must hold at once", func() {
				So(got, ShouldHaveLength, 2)
			})
		})

		Convey("When nothing survives", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{Budget: floatPtr(1)})

			So(got, ShouldBeEmpty)
		})
	})
}

func TestRankOrdering(t *testing.T) {
	Convey("Given cars with distinct normalized features", t, func() {
		cars := []model.Car{
			car("Low", 10, 5, "Petrol", "Sedan", map[string]float64{
				weights.FeatSafetyNorm: 0.2,
			}),
			car("High", 10, 5, "Petrol", "Sedan", map[string]float64{
				weights.FeatSafetyNorm: 0.9,
			}),
			car("Mid", 10, 5, "Petrol", "Sedan", map[string]float64{
				weights.FeatSafetyNorm: 0.5,
			}),
		}
		w := map[string]float64{weights.FeatSafetyNorm: 1.0}

		Convey("When ranked", func() {
			got := scoring.Rank(cars, w, scoring.Constraints{})

			Convey("Then scores descend", func() {
				So(got[0].Name, ShouldEqual, "High")
				So(got[1].Name, ShouldEqual, "Mid")
				So(got[2].Name, ShouldEqual, "Low")
				So(got[0].FinalScore, ShouldBeGreaterThan, got[1].FinalScore)
				So(got[1].FinalScore, ShouldBeGreaterThan, got[2].FinalScore)
			})
		})

		Convey("When two rows tie exactly", func() {
			tied := append(cars, car("High Twin", 10, 5, "Petrol", "Sedan", map[string]float64{
				weights.FeatSafetyNorm: 0.9,
			}))
			got := scoring.Rank(tied, w, scoring.Constraints{})

			Convey("Then dataset order breaks the tie", func() {
				So(got[0].Name, ShouldEqual, "High")
				So(got[1].Name, ShouldEqual, "High Twin")
			})
		})

		Convey("When ranked twice", func() {
			first := scoring.Rank(cars, w, scoring.Constraints{})
			second := scoring.Rank(cars, w, scoring.Constraints{})

			Convey("Then the runs are bit-identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given a weight vector over several features", t, func() {
		w := map[string]float64{
			weights.FeatSafetyNorm:  0.5,
			weights.FeatMileageNorm: 0.3,
			weights.FeatPriceNorm:   -0.2,
		}

		Convey("When the row carries every feature", func() {
			c := car("Full", 10, 5, "Petrol", "Sedan", map[string]float64{
				weights.FeatSafetyNorm:  0.8,
				weights.FeatMileageNorm: 0.6,
				weights.FeatPriceNorm:   0.4,
			})

			Convey("Then the score is the weighted sum", func() {
				So(scoring.Score(c, w), ShouldAlmostEqual, 0.8*0.5+0.6*0.3+0.4*-0.2, 1e-12)
			})
		})

		Convey("When the row is missing a weighted feature", func() {
			c := car("Partial", 10, 5, "EV", "Hatchback", map[string]float64{
				weights.FeatSafetyNorm: 0.8,
				weights.FeatPriceNorm:  0.4,
			})

			Convey("Then the missing term is skipped, not zero-filled or rejected", func() {
				So(scoring.Score(c, w), ShouldAlmostEqual, 0.8*0.5+0.4*-0.2, 1e-12)
			})
		})

		Convey("When the row has no norms at all", func() {
			c := car("Bare", 10, 5, "Petrol", "Sedan", nil)

			So(scoring.Score(c, w), ShouldEqual, 0)
		})
	})
}

func TestFromIntentRecord(t *testing.T) {
	Convey("Given a parsed intent record", t, func() {
		rec := model.IntentRecord{
			Intents:  []string{"family"},
			Budget:   floatPtr(12),
			MinSeats: intPtr(7),
			FuelType: "diesel",
			BodyType: "suv",
		}

		Convey("When lifted into constraints", func() {
			c := scoring.FromIntentRecord(rec)

			So(c.Budget, ShouldEqual, rec.Budget)
			So(c.MinSeats, ShouldEqual, rec.MinSeats)
			So(c.FuelType, ShouldEqual, "diesel")
			So(c.BodyType, ShouldEqual, "suv")
		})
	})
}
