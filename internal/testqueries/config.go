// Package testqueries drives a running CarPilot instance with canned
// queries and verifies the ranking invariants of the responses.
package testqueries

import (
	"runtime"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTopK    = 10
	DefaultTimeout = 30 * time.Second
)

// Config controls a test run.
type Config struct {
	BaseURL string
	TopK    int
	Workers int
	Timeout time.Duration
	LogFile string
	Verbose bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		TopK:    DefaultTopK,
		Workers: runtime.NumCPU(),
		Timeout: DefaultTimeout,
	}
}
