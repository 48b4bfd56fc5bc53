// Package scoring filters the dataset against query constraints and ranks
// the survivors by their weighted feature score.
package scoring

import (
	"sort"
	"strings"

	"github.com/carpilot/carpilot/internal/domain/model"
)

// Constraints are the hard filters extracted from a query. Nil/empty fields
// do not filter. All present constraints apply conjunctively.
type Constraints struct {
	Budget   *float64 // price_min_lakh <= Budget
	MinSeats *int     // seats >= MinSeats
	FuelType string   // case-insensitive exact match
	BodyType string   // case-insensitive exact match
}

// FromIntentRecord lifts the constraint fields out of a parsed record.
func FromIntentRecord(rec model.IntentRecord) Constraints {
	return Constraints{
		Budget:   rec.Budget,
		MinSeats: rec.MinSeats,
		FuelType: rec.FuelType,
		BodyType: rec.BodyType,
	}
}

// Rank applies the constraints to cars, scores every surviving row with the
// given weight vector, and returns the full result sorted by score
// descending. The sort is stable: ties keep dataset order. Slicing to
// top-K is the caller's responsibility.
//
// A feature named by the weight vector but absent from a row's Norms is
// skipped for that row only, yielding a partial score.
func Rank(cars []model.Car, weights map[string]float64, c Constraints) []model.ScoredCar {
	// Fixed summation order keeps scores bit-identical across calls.
	feats := featureOrder(weights)

	scored := make([]model.ScoredCar, 0, len(cars))
	for _, car := range cars {
		if !c.matches(car) {
			continue
		}
		scored = append(scored, model.ScoredCar{
			Car:        car,
			FinalScore: score(car, weights, feats),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	return scored
}

// Score computes the weighted linear combination of the car's normalized
// features, omitting features the row does not carry.
func Score(car model.Car, weights map[string]float64) float64 {
	return score(car, weights, featureOrder(weights))
}

func score(car model.Car, weights map[string]float64, feats []string) float64 {
	total := 0.0
	for _, feat := range feats {
		if v, ok := car.Norms[feat]; ok {
			total += v * weights[feat]
		}
	}
	return total
}

func featureOrder(weights map[string]float64) []string {
	feats := make([]string, 0, len(weights))
	for feat := range weights {
		feats = append(feats, feat)
	}
	sort.Strings(feats)
	return feats
}

func (c Constraints) matches(car model.Car) bool {
	if c.Budget != nil && car.PriceMinLakh > *c.Budget {
		return false
	}
	if c.MinSeats != nil && car.Seats < *c.MinSeats {
		return false
	}
	if c.FuelType != "" && !strings.EqualFold(car.FuelType, c.FuelType) {
		return false
	}
	if c.BodyType != "" && !strings.EqualFold(car.BodyType, c.BodyType) {
		return false
	}
	return true
}
