// Package types contains common response shapes used across the application
package types

// ResultItem is one ranked row returned by a recommendation.
// Optional specs serialize as null when absent from the dataset row.
type ResultItem struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	FinalScore    float64  `json:"final_score"`
	PriceMinLakh  float64  `json:"price_min_lakh"`
	Seats         int      `json:"seats"`
	PowerBHP      *float64 `json:"power_bhp"`
	MileageKMPL   *float64 `json:"mileage_kmpl"`
	SafetyRating  *float64 `json:"safety_rating"`
	FuelType      string   `json:"fuel_type"`
	BodyType      string   `json:"body_type"`
	ResaleValue5Y *float64 `json:"resale_value_5yr"`
	Year          *int     `json:"year"`
	Reason        string   `json:"reason"`
}

// KeySpecs is the formatted spec digest attached to a suggestion.
// Absent optionals are rendered as "N/A".
type KeySpecs struct {
	Price   string `json:"price"`
	Seats   int    `json:"seats"`
	Power   string `json:"power"`
	Mileage string `json:"mileage"`
	Safety  string `json:"safety"`
}

// Suggestion is the explanation object built from the top-ranked result.
type Suggestion struct {
	CarName  string   `json:"car_name"`
	Brand    string   `json:"brand"`
	Score    float64  `json:"score"`
	Summary  string   `json:"summary"`
	Reasons  []string `json:"reasons"`
	KeySpecs KeySpecs `json:"key_specs"`
}

// Recommendation is the full output of one recommend call. Suggestion is
// nil exactly when Results is empty.
type Recommendation struct {
	Results    []ResultItem `json:"results"`
	Suggestion *Suggestion  `json:"carpilot_suggestion"`
}
