package testqueries

// TestQuery pairs a canned query with the constraints its responses must
// honor. Zero values mean "not constrained".
type TestQuery struct {
	Name        string
	Query       string
	MaxPrice    float64
	MinSeats    int
	FuelType    string
	BodyType    string
	WantIntents []string
}

// CannedQueries cover the main intent mixes the parser supports.
var CannedQueries = []TestQuery{
	{
		Name:        "family_budget",
		Query:       "Family friendly 5 seater car under 12 lakhs with petrol engine",
		MaxPrice:    12,
		MinSeats:    5,
		FuelType:    "petrol",
		WantIntents: []string{"family", "budget"},
	},
	{
		Name:        "performance",
		Query:       "Looking for a sporty performance car under 25 lakhs",
		MaxPrice:    25,
		WantIntents: []string{"performance"},
	},
	{
		Name:        "collector",
		Query:       "Show me rare collector cars",
		WantIntents: []string{"collector"},
	},
	{
		Name:        "ev_suv",
		Query:       "Electric SUV with long range",
		FuelType:    "ev",
		BodyType:    "suv",
		WantIntents: []string{"ev"},
	},
	{
		Name:        "general",
		Query:       "I want a nice car",
		WantIntents: []string{"general"},
	},
}
