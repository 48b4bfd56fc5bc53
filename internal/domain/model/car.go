// Package model contains domain models passed between layers.
package model

// Currency and unit conventions of the deployment locale. These are named
// constants so a reconfiguration for another market is a one-line change.
const (
	// CurrencySymbol prefixes formatted prices.
	CurrencySymbol = "₹"
	// LakhSuffix marks amounts expressed in lakhs (1 lakh = 100,000).
	LakhSuffix = "L"
	// RupeesPerLakh converts raw currency amounts to lakhs.
	RupeesPerLakh = 100_000.0
	// MileageUnit is the fuel-efficiency unit of the dataset.
	MileageUnit = "km/l"
	// PowerUnit is the engine-power unit of the dataset.
	PowerUnit = "BHP"
)

// Car is one row of the normalized dataset. Rows are loaded once at startup
// and treated as immutable; optional specs are pointers so an absent cell is
// distinguishable from zero.
type Car struct {
	Name          string
	Brand         string
	PriceMinLakh  float64
	Seats         int
	MileageKMPL   *float64
	PowerBHP      *float64
	SafetyRating  *float64
	FuelType      string
	BodyType      string
	ResaleValue5Y *float64
	Year          *int

	// Norms holds the precomputed [0,1] feature columns keyed by their
	// "_norm" column name. A feature missing here is skipped during
	// scoring, not treated as zero.
	Norms map[string]float64
}

// ScoredCar pairs a car with its weighted score for one request.
type ScoredCar struct {
	Car
	FinalScore float64
}

// IntentRecord is the structured form of a free-text query.
// Intents is never empty; Parse falls back to ["general"].
type IntentRecord struct {
	Intents  []string
	Budget   *float64 // lakhs
	MinSeats *int
	FuelType string // "" when the query names no fuel
	BodyType string // "" when the query names no body style
}
