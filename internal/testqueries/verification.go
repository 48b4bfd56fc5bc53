package testqueries

import (
	"fmt"
	"strings"
)

// verifyResponse checks one response against the ranking invariants and the
// constraints the query should have triggered.
func verifyResponse(q TestQuery, resp RecommendResponse) []error {
	var problems []error

	// Scores must be non-increasing.
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].FinalScore > resp.Results[i-1].FinalScore {
			problems = append(problems, fmt.Errorf(
				"scores increase at position %d (%f > %f)",
				i, resp.Results[i].FinalScore, resp.Results[i-1].FinalScore))
		}
	}

	for i, r := range resp.Results {
		if q.MaxPrice > 0 && r.PriceMinLakh > q.MaxPrice {
			problems = append(problems, fmt.Errorf(
				"result %d (%s) breaks budget: %.2f > %.2f", i, r.Name, r.PriceMinLakh, q.MaxPrice))
		}
		if q.MinSeats > 0 && r.Seats < q.MinSeats {
			problems = append(problems, fmt.Errorf(
				"result %d (%s) breaks seats: %d < %d", i, r.Name, r.Seats, q.MinSeats))
		}
		if q.FuelType != "" && !strings.EqualFold(r.FuelType, q.FuelType) {
			problems = append(problems, fmt.Errorf(
				"result %d (%s) breaks fuel filter: %q", i, r.Name, r.FuelType))
		}
		if q.BodyType != "" && !strings.EqualFold(r.BodyType, q.BodyType) {
			problems = append(problems, fmt.Errorf(
				"result %d (%s) breaks body filter: %q", i, r.Name, r.BodyType))
		}
	}

	// The suggestion must track the first result, and exist exactly when
	// results do.
	switch {
	case len(resp.Results) == 0 && resp.Suggestion != nil:
		problems = append(problems, fmt.Errorf("suggestion present with empty results"))
	case len(resp.Results) > 0 && resp.Suggestion == nil:
		problems = append(problems, fmt.Errorf("suggestion missing with %d results", len(resp.Results)))
	case resp.Suggestion != nil && resp.Suggestion.CarName != resp.Results[0].Name:
		problems = append(problems, fmt.Errorf(
			"suggestion names %q, top result is %q", resp.Suggestion.CarName, resp.Results[0].Name))
	}

	// The audit trail should echo the detected intents.
	for i, r := range resp.Results {
		for _, intent := range q.WantIntents {
			if !strings.Contains(r.Reason, intent) {
				problems = append(problems, fmt.Errorf(
					"result %d reason lacks intent %q: %q", i, intent, r.Reason))
			}
		}
	}

	return problems
}

// verifyIdempotence checks that two runs of the same query returned the
// same ordered result names and scores.
func verifyIdempotence(first, second RecommendResponse) []error {
	if len(first.Results) != len(second.Results) {
		return []error{fmt.Errorf(
			"result counts differ across runs: %d vs %d", len(first.Results), len(second.Results))}
	}
	var problems []error
	for i := range first.Results {
		if first.Results[i].Name != second.Results[i].Name ||
			first.Results[i].FinalScore != second.Results[i].FinalScore {
			problems = append(problems, fmt.Errorf(
				"run mismatch at position %d: %s/%f vs %s/%f", i,
				first.Results[i].Name, first.Results[i].FinalScore,
				second.Results[i].Name, second.Results[i].FinalScore))
		}
	}
	return problems
}
