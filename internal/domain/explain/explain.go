// Package explain derives a human-readable rationale for the top-ranked car.
package explain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carpilot/carpilot/internal/domain/model"
	"github.com/carpilot/carpilot/internal/domain/types"
)

// Thresholds for the standalone reason blocks.
const (
	premiumPriceLakh   = 50.0
	strongSafetyStars  = 4.0
	strongResaleShare  = 60.0
	notAvailable       = "N/A"
	electricFuelLabel  = "electric"
	luxuryIntent       = "luxury" // never produced by the parser; kept for external callers
	familyIntent       = "family"
	performanceIntent  = "performance"
	budgetIntent       = "budget"
	evIntent           = "ev"
)

// Suggest builds the explanation object for the top-ranked row. It is pure
// and deterministic, tolerates missing optional fields, and never fails.
func Suggest(top model.ScoredCar, queryText string, rec model.IntentRecord) types.Suggestion {
	reasons := buildReasons(top, rec)

	intentText := titleCase(strings.Join(rec.Intents, ", "))
	summary := fmt.Sprintf(
		"Based on your search for '%s', our AI identified %s priorities. The %s scored %.3f - our highest match for your needs.",
		queryText, intentText, top.Name, top.FinalScore,
	)

	return types.Suggestion{
		CarName:  top.Name,
		Brand:    top.Brand,
		Score:    top.FinalScore,
		Summary:  summary,
		Reasons:  reasons,
		KeySpecs: keySpecs(top.Car),
	}
}

func buildReasons(top model.ScoredCar, rec model.IntentRecord) []string {
	car := top.Car
	intents := rec.Intents
	var reasons []string

	if hasIntent(intents, familyIntent) {
		safety := "good"
		if car.SafetyRating != nil {
			safety = formatFloat(*car.SafetyRating)
		}
		reasons = append(reasons, fmt.Sprintf(
			"Perfect for families: with %d comfortable seats and a %s star safety rating, this car prioritizes your family's wellbeing",
			car.Seats, safety))
		if car.MileageKMPL != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Cost-efficient: %s %s mileage keeps running costs low for daily school runs and weekend trips",
				formatFloat(*car.MileageKMPL), model.MileageUnit))
		}
	}

	if hasIntent(intents, performanceIntent) {
		if car.PowerBHP != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Powerful performance: %d %s delivers thrilling acceleration and highway confidence",
				int(*car.PowerBHP), model.PowerUnit))
		}
		reasons = append(reasons,
			"Dynamic driving: built for enthusiasts who demand responsive handling and spirited performance")
	}

	if hasIntent(intents, budgetIntent) {
		reasons = append(reasons, fmt.Sprintf(
			"Budget champion: at just %s, this offers exceptional value without compromising quality",
			formatPrice(car.PriceMinLakh)))
		if car.MileageKMPL != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Low running costs: %s %s efficiency means more money stays in your pocket",
				formatFloat(*car.MileageKMPL), model.MileageUnit))
		}
		if car.ResaleValue5Y != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Strong resale: retains approximately %d%% value after 5 years",
				int(*car.ResaleValue5Y)))
		}
	}

	if hasIntent(intents, evIntent) || strings.EqualFold(car.FuelType, electricFuelLabel) {
		reasons = append(reasons,
			"Eco-friendly choice: zero emissions driving helps protect the environment",
			"Future-ready: electric powertrain means lower maintenance and no fuel expenses")
	}

	if hasIntent(intents, luxuryIntent) || car.PriceMinLakh > premiumPriceLakh {
		reasons = append(reasons, fmt.Sprintf(
			"Premium experience: %s craftsmanship delivers refined comfort and cutting-edge technology",
			car.Brand))
		if car.SafetyRating != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Top-tier safety: %s star rating with advanced driver assistance systems",
				formatFloat(*car.SafetyRating)))
		}
	}

	if rec.Budget != nil {
		reasons = append(reasons, fmt.Sprintf(
			"Within budget: fits comfortably under your %s budget",
			formatPrice(*rec.Budget)))
	}

	if car.SafetyRating != nil && *car.SafetyRating >= strongSafetyStars && !hasIntent(intents, familyIntent) {
		reasons = append(reasons, fmt.Sprintf(
			"Safety first: %s star safety rating for peace of mind",
			formatFloat(*car.SafetyRating)))
	}

	if car.ResaleValue5Y != nil && *car.ResaleValue5Y >= strongResaleShare && !hasIntent(intents, budgetIntent) {
		reasons = append(reasons, fmt.Sprintf(
			"Smart investment: strong %d%% resale value retention",
			int(*car.ResaleValue5Y)))
	}

	return reasons
}

func keySpecs(car model.Car) types.KeySpecs {
	specs := types.KeySpecs{
		Price:   formatPrice(car.PriceMinLakh),
		Seats:   car.Seats,
		Power:   notAvailable,
		Mileage: notAvailable,
		Safety:  notAvailable,
	}
	if car.PowerBHP != nil {
		specs.Power = fmt.Sprintf("%d %s", int(*car.PowerBHP), model.PowerUnit)
	}
	if car.MileageKMPL != nil {
		specs.Mileage = fmt.Sprintf("%s %s", formatFloat(*car.MileageKMPL), model.MileageUnit)
	}
	if car.SafetyRating != nil {
		specs.Safety = formatFloat(*car.SafetyRating) + " star"
	}
	return specs
}

// FormatPrice renders an amount in lakhs with the locale currency symbol,
// e.g. "₹12.5L".
func FormatPrice(lakhs float64) string {
	return formatPrice(lakhs)
}

func formatPrice(lakhs float64) string {
	return model.CurrencySymbol + formatFloat(lakhs) + model.LakhSuffix
}

// formatFloat renders a float without trailing zeros ("12.5", "5").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hasIntent(intents []string, want string) bool {
	for _, intent := range intents {
		if intent == want {
			return true
		}
	}
	return false
}

// titleCase capitalizes the first letter of every space-separated word,
// matching how the intent list is rendered in the summary.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
