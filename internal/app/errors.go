package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrMissingQuery = errors.New("missing query text")
)
