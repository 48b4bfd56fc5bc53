package repository

import (
	"context"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/carpilot/carpilot/internal/domain/model"
	"github.com/carpilot/carpilot/internal/domain/weights"
)

//go:embed data/cars.csv
var embeddedDataset embed.FS

const embeddedDatasetPath = "data/cars.csv"

// Columns every dataset must carry, beyond the norm siblings demanded by
// the weight profiles.
var requiredColumns = []string{
	"name", "brand", "price_min_lakh", "seats", "mileage_kmpl", "power_bhp",
	"safety_rating", "fuel_type", "body_type", "resale_value_5yr", "year",
}

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithPath sets the dataset file path. When unset, the store serves the
// embedded sample dataset.
func WithPath(path string) Option {
	return func(s *CSVStore) {
		s.path = path
	}
}

// CSVStore serves a normalized CSV dataset from memory. The table is held
// behind an atomic pointer; Reload swaps the whole slice in one step.
type CSVStore struct {
	path  string
	table atomic.Pointer[[]model.Car]
}

// NewCSVStore loads the dataset once and fails fast on schema mismatches.
func NewCSVStore(ctx context.Context, opts ...Option) (*CSVStore, error) {
	s := &CSVStore{}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Cars returns the current dataset snapshot.
func (s *CSVStore) Cars(_ context.Context) []model.Car {
	return *s.table.Load()
}

// Count returns the number of rows in the current snapshot.
func (s *CSVStore) Count(_ context.Context) int {
	return len(*s.table.Load())
}

// Reload re-reads the dataset source and atomically swaps in the new table.
// On error the previous table stays in place.
func (s *CSVStore) Reload(_ context.Context) error {
	r, closeFn, err := s.open()
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer closeFn()

	cars, err := parseDataset(r)
	if err != nil {
		return err
	}
	s.table.Store(&cars)
	return nil
}

func (s *CSVStore) open() (io.Reader, func(), error) {
	if s.path == "" {
		f, err := embeddedDataset.Open(embeddedDatasetPath)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// parseDataset reads the CSV table, validating the header up front so a
// broken schema fails at load time rather than per request.
func parseDataset(r io.Reader) ([]model.Car, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	required := append([]string{}, requiredColumns...)
	for _, feat := range weights.Features() {
		required = append(required, feat)
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	normColumns := weights.Features()

	var cars []model.Car
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRow, line, err)
		}

		car, err := parseRow(record, col, normColumns)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRow, line, err)
		}
		cars = append(cars, car)
	}

	if len(cars) == 0 {
		return nil, ErrEmptyDataset
	}
	return cars, nil
}

func parseRow(record []string, col map[string]int, normColumns []string) (model.Car, error) {
	cell := func(name string) string {
		i := col[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	price, err := strconv.ParseFloat(cell("price_min_lakh"), 64)
	if err != nil {
		return model.Car{}, fmt.Errorf("price_min_lakh: %v", err)
	}
	seats, err := strconv.Atoi(cell("seats"))
	if err != nil {
		return model.Car{}, fmt.Errorf("seats: %v", err)
	}

	car := model.Car{
		Name:          cell("name"),
		Brand:         cell("brand"),
		PriceMinLakh:  price,
		Seats:         seats,
		MileageKMPL:   optionalFloat(cell("mileage_kmpl")),
		PowerBHP:      optionalFloat(cell("power_bhp")),
		SafetyRating:  optionalFloat(cell("safety_rating")),
		FuelType:      cell("fuel_type"),
		BodyType:      cell("body_type"),
		ResaleValue5Y: optionalFloat(cell("resale_value_5yr")),
		Year:          optionalInt(cell("year")),
		Norms:         make(map[string]float64, len(normColumns)),
	}
	if car.Name == "" {
		return model.Car{}, fmt.Errorf("empty name")
	}

	// A blank norm cell leaves the feature out of the map entirely; the
	// scoring engine then skips it for this row.
	for _, name := range normColumns {
		if v := optionalFloat(cell(name)); v != nil {
			car.Norms[name] = *v
		}
	}
	return car, nil
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
