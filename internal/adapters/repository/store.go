// Package repository loads the normalized car dataset and serves it as an
// immutable, shared-read-only table.
package repository

import (
	"context"

	"github.com/carpilot/carpilot/internal/domain/model"
)

// Store provides read access to the dataset table. Implementations must
// treat the table as immutable: a reload swaps the whole slice atomically
// so concurrent readers never observe a partially updated table.
type Store interface {
	// Cars returns the current dataset snapshot. Callers must not mutate
	// the returned slice or its rows.
	Cars(ctx context.Context) []model.Car

	// Count returns the number of rows in the current snapshot.
	Count(ctx context.Context) int

	// Reload re-reads the dataset source and swaps in the new table.
	Reload(ctx context.Context) error
}
