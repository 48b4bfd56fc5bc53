package explain_test

import (
	"strings"
	"testing"

	"github.com/carpilot/carpilot/internal/domain/explain"
	"github.com/carpilot/carpilot/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func floatPtr(v float64) *float64 { return &v }

func scored(car model.Car, score float64) model.ScoredCar {
	return model.ScoredCar{Car: car, FinalScore: score}
}

func fullCar() model.Car {
	return model.Car{
		Name:          "Aria ZX",
		Brand:         "Aria",
		PriceMinLakh:  12.5,
		Seats:         7,
		MileageKMPL:   floatPtr(18.2),
		PowerBHP:      floatPtr(115),
		SafetyRating:  floatPtr(5),
		ResaleValue5Y: floatPtr(62),
		FuelType:      "Petrol",
		BodyType:      "SUV",
	}
}

func TestSuggest(t *testing.T) {
	Convey("Given a top-ranked family car", t, func() {
		top := scored(fullCar(), 0.625)
		rec := model.IntentRecord{Intents: []string{"family", "budget"}}

		Convey("When the suggestion is built", func() {
			s := explain.Suggest(top, "family car under 15 lakh", rec)

			Convey("Then the header fields mirror the car", func() {
				So(s.CarName, ShouldEqual, "Aria ZX")
				So(s.Brand, ShouldEqual, "Aria")
				So(s.Score, ShouldEqual, 0.625)
			})

			Convey("And the summary interpolates query, intents and score", func() {
				So(s.Summary, ShouldEqual,
					"Based on your search for 'family car under 15 lakh', our AI identified Family, Budget priorities. The Aria ZX scored 0.625 - our highest match for your needs.")
			})

			Convey("And family reasons come before budget reasons", func() {
				So(len(s.Reasons), ShouldBeGreaterThanOrEqualTo, 5)
				So(s.Reasons[0], ShouldEqual,
					"Perfect for families: with 7 comfortable seats and a 5 star safety rating, this car prioritizes your family's wellbeing")
				So(s.Reasons[1], ShouldStartWith, "Cost-efficient: 18.2 km/l")
				So(s.Reasons[2], ShouldEqual,
					"Budget champion: at just ₹12.5L, this offers exceptional value without compromising quality")
			})

			Convey("And standalone safety is suppressed when family already covers it", func() {
				for _, r := range s.Reasons {
					So(r, ShouldNotStartWith, "Safety first:")
				}
			})

			Convey("And standalone resale is suppressed when budget already covers it", func() {
				for _, r := range s.Reasons {
					So(r, ShouldNotStartWith, "Smart investment:")
				}
			})

			Convey("And the key specs render every field", func() {
				So(s.KeySpecs.Price, ShouldEqual, "₹12.5L")
				So(s.KeySpecs.Seats, ShouldEqual, 7)
				So(s.KeySpecs.Power, ShouldEqual, "115 BHP")
				So(s.KeySpecs.Mileage, ShouldEqual, "18.2 km/l")
				So(s.KeySpecs.Safety, ShouldEqual, "5 star")
			})
		})
	})

	Convey("Given a car with missing optional fields", t, func() {
		car := model.Car{
			Name:         "Bare One",
			Brand:        "Bare",
			PriceMinLakh: 8,
			Seats:        5,
			FuelType:     "Petrol",
		}
		rec := model.IntentRecord{Intents: []string{"family"}}

		Convey("When the suggestion is built", func() {
			s := explain.Suggest(scored(car, 0.2), "safe car", rec)

			Convey("Then the family reason falls back to a generic safety label", func() {
				So(s.Reasons[0], ShouldContainSubstring, "a good star safety rating")
			})

			Convey("And the mileage reason is skipped", func() {
				for _, r := range s.Reasons {
					So(r, ShouldNotStartWith, "Cost-efficient:")
				}
			})

			Convey("And absent specs render as N/A", func() {
				So(s.KeySpecs.Power, ShouldEqual, "N/A")
				So(s.KeySpecs.Mileage, ShouldEqual, "N/A")
				So(s.KeySpecs.Safety, ShouldEqual, "N/A")
			})
		})
	})

	Convey("Given an electric car without an ev intent", t, func() {
		car := fullCar()
		car.FuelType = "Electric"
		rec := model.IntentRecord{Intents: []string{"general"}}

		Convey("When the suggestion is built", func() {
			s := explain.Suggest(scored(car, 0.4), "a nice car", rec)

			Convey("Then the eco reasons still fire off the fuel type", func() {
				So(s.Reasons, ShouldContain,
					"Eco-friendly choice: zero emissions driving helps protect the environment")
				So(s.Reasons, ShouldContain,
					"Future-ready: electric powertrain means lower maintenance and no fuel expenses")
			})
		})
	})

	Convey("Given a car priced above the premium threshold", t, func() {
		car := fullCar()
		car.PriceMinLakh = 75
		rec := model.IntentRecord{Intents: []string{"general"}}

		Convey("When the suggestion is built", func() {
			s := explain.Suggest(scored(car, 0.4), "something premium", rec)

			Convey("Then the premium block fires without a luxury intent", func() {
				So(s.Reasons, ShouldContain,
					"Premium experience: Aria craftsmanship delivers refined comfort and cutting-edge technology")
				So(s.Reasons, ShouldContain,
					"Top-tier safety: 5 star rating with advanced driver assistance systems")
			})
		})
	})

	Convey("Given a parsed budget constraint", t, func() {
		rec := model.IntentRecord{Intents: []string{"budget"}, Budget: floatPtr(15)}

		Convey("When the suggestion is built", func() {
			s := explain.Suggest(scored(fullCar(), 0.4), "under 15 lakh", rec)

			Convey("Then the within-budget reason names the cap", func() {
				So(s.Reasons, ShouldContain,
					"Within budget: fits comfortably under your ₹15L budget")
			})
		})
	})

	Convey("Given a safe, high-resale car with only a performance intent", t, func() {
		rec := model.IntentRecord{Intents: []string{"performance"}}

		Convey("When the suggestion is built", func() {
			s := explain.Suggest(scored(fullCar(), 0.4), "fast car", rec)

			Convey("Then the standalone safety and resale blocks fire", func() {
				So(s.Reasons, ShouldContain,
					"Safety first: 5 star safety rating for peace of mind")
				So(s.Reasons, ShouldContain,
					"Smart investment: strong 62% resale value retention")
			})

			Convey("And performance reasons come first", func() {
				So(s.Reasons[0], ShouldEqual,
					"Powerful performance: 115 BHP delivers thrilling acceleration and highway confidence")
				So(s.Reasons[1], ShouldEqual,
					"Dynamic driving: built for enthusiasts who demand responsive handling and spirited performance")
			})
		})
	})
}

func TestFormatPrice(t *testing.T) {
	Convey("Given lakh amounts", t, func() {
		Convey("Then fractions print without trailing zeros", func() {
			So(explain.FormatPrice(12.5), ShouldEqual, "₹12.5L")
			So(explain.FormatPrice(5), ShouldEqual, "₹5L")
			So(explain.FormatPrice(10.25), ShouldEqual, "₹10.25L")
		})
	})
}

func TestSummaryIntentRendering(t *testing.T) {
	Convey("Given a multi-word intent list", t, func() {
		rec := model.IntentRecord{Intents: []string{"family", "performance", "ev"}}
		s := explain.Suggest(scored(fullCar(), 0.1), "q", rec)

		Convey("Then each intent is title-cased in the summary", func() {
			So(s.Summary, ShouldContainSubstring, "Family, Performance, Ev priorities")
			So(strings.Count(s.Summary, ","), ShouldEqual, 2)
		})
	})
}
