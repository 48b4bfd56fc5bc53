// Package etl prepares raw car datasets for the scoring engine by adding
// min-max normalized feature columns.
package etl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// NormSuffix is appended to every generated column name.
const NormSuffix = "_norm"

// DefaultColumns lists the raw feature columns normalized for the shipped
// dataset. Callers may pass their own subset.
var DefaultColumns = []string{
	"engine_cc", "power_bhp", "torque_nm", "mileage_kmpl",
	"top_speed_kmph", "acceleration_0_100", "boot_space_l",
	"ground_clearance_mm", "maintenance_cost_year",
	"service_interval_km", "resale_value_5yr", "price_min_lakh",
	"price_max_lakh", "production_units", "market_popularity_score",
	"collector_interest_score", "ev_range_km", "fast_charge_time_min",
	"auction_price_avg", "rarity_index", "demand_index",
	"appreciation_rate", "heritage_score",
}

// invertedColumns are "lower is better" features whose norm is flipped so a
// higher norm always means better. Price is NOT inverted; the weight
// profiles carry negative price weights instead.
var invertedColumns = map[string]bool{
	"acceleration_0_100": true,
}

// ErrNoRows is returned when the input holds a header but no data.
var ErrNoRows = errors.New("input has no data rows")

// Normalize reads a raw CSV dataset, appends a [0,1] min-max normalized
// sibling for every requested column present in the header, and writes the
// widened table. Blank or unparsable cells produce blank norm cells; a
// column with a single distinct value normalizes to 0 everywhere.
func Normalize(in io.Reader, out io.Writer, columns []string) error {
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	// Only columns the input actually has get a norm sibling.
	var present []string
	for _, name := range columns {
		if _, ok := col[name]; ok {
			present = append(present, name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return ErrNoRows
	}

	type span struct{ min, max float64 }
	spans := make(map[string]span, len(present))
	for _, name := range present {
		s := span{min: 0, max: 0}
		first := true
		for _, row := range rows {
			v, ok := parseCell(row, col[name])
			if !ok {
				continue
			}
			if first {
				s = span{min: v, max: v}
				first = false
				continue
			}
			if v < s.min {
				s.min = v
			}
			if v > s.max {
				s.max = v
			}
		}
		spans[name] = s
	}

	cw := csv.NewWriter(out)
	outHeader := append(append([]string{}, header...), normNames(present)...)
	if err := cw.Write(outHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		outRow := append([]string{}, row...)
		for _, name := range present {
			outRow = append(outRow, normCell(row, col[name], spans[name].min, spans[name].max, invertedColumns[name]))
		}
		if err := cw.Write(outRow); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func normNames(columns []string) []string {
	names := make([]string, len(columns))
	for i, name := range columns {
		names[i] = name + NormSuffix
	}
	return names
}

func normCell(row []string, idx int, min, max float64, inverted bool) string {
	v, ok := parseCell(row, idx)
	if !ok {
		return ""
	}
	var n float64
	if max > min {
		n = (v - min) / (max - min)
	}
	if inverted {
		n = 1 - n
	}
	return strconv.FormatFloat(n, 'f', 4, 64)
}

func parseCell(row []string, idx int) (float64, bool) {
	if idx >= len(row) || row[idx] == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(row[idx], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
