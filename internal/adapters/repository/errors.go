package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrMissingColumn = errors.New("required dataset column missing")
	ErrEmptyDataset  = errors.New("dataset has no rows")
	ErrBadRow        = errors.New("malformed dataset row")
)
