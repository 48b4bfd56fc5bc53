package query

// Intent labels produced by Parse. Order of the checks below is the order
// intents appear in the parsed record.
const (
	IntentFamily      = "family"
	IntentBudget      = "budget"
	IntentPerformance = "performance"
	IntentCollector   = "collector"
	IntentEV          = "ev"
	IntentResale      = "resale"
	IntentGeneral     = "general"
)

// intentKeywords pairs each intent with its trigger words. Detection is
// plain substring membership over the lower-cased query.
var intentKeywords = []struct {
	intent string
	words  []string
}{
	{IntentFamily, []string{"family", "safe", "kids", "children", "comfortable", "7 seater", "5 seater"}},
	{IntentBudget, []string{"budget", "cheap", "affordable", "low cost", "value", "under"}},
	{IntentPerformance, []string{"sporty", "performance", "fast", "bhp", "torque", "acceleration"}},
	{IntentCollector, []string{"rare", "collector", "vintage", "classic", "limited", "special edition"}},
	{IntentEV, []string{"ev", "electric", "battery", "zero emission", "range"}},
	{IntentResale, []string{"resale", "value hold", "good resale"}},
}

// fuelKeywords maps fuel categories to their trigger words, checked in
// order. "ev" and "electric" also sit in the EV intent list above, so a
// query saying "electric" yields both the ev intent and fuel_type=ev.
var fuelKeywords = []struct {
	fuel  string
	words []string
}{
	{"petrol", []string{"petrol", "gasoline"}},
	{"diesel", []string{"diesel"}},
	{"ev", []string{"ev", "electric"}},
	{"hybrid", []string{"hybrid"}},
}

// bodyTypeKeywords maps body styles to their trigger words, checked in order.
var bodyTypeKeywords = []struct {
	body  string
	words []string
}{
	{"suv", []string{"suv"}},
	{"sedan", []string{"sedan"}},
	{"hatchback", []string{"hatchback"}},
	{"mpv", []string{"mpv", "minivan"}},
}
