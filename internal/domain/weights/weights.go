// Package weights maps detected intents to a single L1-normalized weight
// vector over the dataset's normalized feature columns.
package weights

import (
	"math"
	"sort"
)

// Normalized feature columns referenced by the intent profiles. Price keeps
// its direct (un-inverted) norm and carries negative weights instead.
const (
	FeatPriceNorm   = "price_min_lakh_norm"
	FeatMileageNorm = "mileage_kmpl_norm"
	FeatPowerNorm   = "power_bhp_norm"
	FeatSafetyNorm  = "safety_rating_norm"
	FeatResaleNorm  = "resale_value_5yr_norm"
)

// profiles holds the fixed per-intent weight tables. Signed magnitudes are
// domain constants of the original deployment.
var profiles = map[string]map[string]float64{
	"family": {
		FeatSafetyNorm:  0.30,
		FeatMileageNorm: 0.25,
		FeatPriceNorm:   -0.20,
		FeatResaleNorm:  0.15,
		FeatPowerNorm:   0.10,
	},
	"performance": {
		FeatPowerNorm:  0.50,
		FeatSafetyNorm: 0.20,
		FeatPriceNorm:  -0.20,
		FeatResaleNorm: 0.10,
	},
	"budget": {
		FeatPriceNorm:   -0.45,
		FeatMileageNorm: 0.30,
		FeatResaleNorm:  0.15,
		FeatSafetyNorm:  0.10,
	},
	"collector": {
		FeatResaleNorm: 0.40,
		FeatSafetyNorm: 0.20,
		FeatPowerNorm:  0.20,
		FeatPriceNorm:  -0.20,
	},
	"ev": {
		FeatMileageNorm: 0.35,
		FeatSafetyNorm:  0.30,
		FeatPriceNorm:   -0.20,
		FeatResaleNorm:  0.15,
	},
	"resale": {
		FeatResaleNorm:  0.45,
		FeatSafetyNorm:  0.25,
		FeatMileageNorm: 0.20,
		FeatPriceNorm:   -0.10,
	},
	"general": {
		FeatPriceNorm:   -0.25,
		FeatMileageNorm: 0.25,
		FeatSafetyNorm:  0.25,
		FeatResaleNorm:  0.25,
	},
}

// Resolve merges the weight profiles of the given intents into one vector
// whose absolute values sum to 1.0. Contributions are additive, so a
// repeated intent doubles its effect; unknown intents contribute nothing.
//
// Degenerate case: if the merged table is empty or its absolute sum is
// zero, Resolve returns the normalized general profile instead of dividing
// by zero. With the shipped profiles this is unreachable (general is never
// empty), but callers outside the parser may pass arbitrary intents.
func Resolve(intents []string) map[string]float64 {
	combined := make(map[string]float64)
	for _, intent := range intents {
		for feat, w := range profiles[intent] {
			combined[feat] += w
		}
	}

	total := 0.0
	for _, w := range combined {
		total += math.Abs(w)
	}
	if total == 0 {
		return Resolve([]string{"general"})
	}

	for feat := range combined {
		combined[feat] /= total
	}
	return combined
}

// Features returns the sorted set of norm columns referenced by any
// profile. The dataset loader uses it to validate the schema at load time.
func Features() []string {
	seen := make(map[string]struct{})
	for _, profile := range profiles {
		for feat := range profile {
			seen[feat] = struct{}{}
		}
	}
	feats := make([]string, 0, len(seen))
	for feat := range seen {
		feats = append(feats, feat)
	}
	sort.Strings(feats)
	return feats
}
