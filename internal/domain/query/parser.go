// Package query converts free-form text into a structured intent record.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/carpilot/carpilot/internal/domain/model"
)

var (
	// "under 10 lakh", "below 12 lakhs", "15 L", ...
	budgetUnitRe = regexp.MustCompile(`(\d+)\s*(lakh|lakhs|l|la)`)
	// bare currency amount: "under 500000"
	bareAmountRe = regexp.MustCompile(`\d{5,7}`)
	// "5 seater", "7 people", ...
	seatsRe = regexp.MustCompile(`(\d+)\s*(seater|seaters|people|persons)`)
)

// Parse converts raw text into a structured intent record. It is pure,
// case-insensitive, and total: every call returns a fully populated record
// with optional fields left nil/empty when the text says nothing about them.
func Parse(text string) model.IntentRecord {
	return model.IntentRecord{
		Intents:  DetectIntents(text),
		Budget:   ExtractBudget(text),
		MinSeats: ExtractSeats(text),
		FuelType: ExtractFuel(text),
		BodyType: ExtractBodyType(text),
	}
}

// DetectIntents returns the intents triggered by the text, in the fixed
// family, budget, performance, collector, ev, resale check order. A query
// matching none of the keyword sets yields ["general"].
func DetectIntents(text string) []string {
	lower := strings.ToLower(text)
	var intents []string
	for _, set := range intentKeywords {
		if containsAny(lower, set.words) {
			intents = append(intents, set.intent)
		}
	}
	if len(intents) == 0 {
		intents = append(intents, IntentGeneral)
	}
	return intents
}

// ExtractBudget returns the budget ceiling in lakhs, or nil. A number with
// a currency-unit token wins; otherwise a bare 5-7 digit amount is divided
// by RupeesPerLakh. Only the first match in the text is used.
func ExtractBudget(text string) *float64 {
	lower := strings.ToLower(text)

	if m := budgetUnitRe.FindStringSubmatch(lower); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return &v
		}
	}

	if m := bareAmountRe.FindString(lower); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			v /= model.RupeesPerLakh
			return &v
		}
	}

	return nil
}

// ExtractSeats returns the minimum seat count named by the text, or nil.
func ExtractSeats(text string) *int {
	m := seatsRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// ExtractFuel returns the first fuel category whose keywords appear in the
// text, or "" when none do.
func ExtractFuel(text string) string {
	lower := strings.ToLower(text)
	for _, group := range fuelKeywords {
		if containsAny(lower, group.words) {
			return group.fuel
		}
	}
	return ""
}

// ExtractBodyType returns the first body style whose keywords appear in the
// text, or "" when none do.
func ExtractBodyType(text string) string {
	lower := strings.ToLower(text)
	for _, group := range bodyTypeKeywords {
		if containsAny(lower, group.words) {
			return group.body
		}
	}
	return ""
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
