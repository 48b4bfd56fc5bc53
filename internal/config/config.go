// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() defaults and Load(ctx) layering defaults, file, and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the normalized CSV dataset. Empty means the
	// embedded sample dataset.
	DatasetPath string `koanf:"dataset_path"`

	// DefaultTopK is used when a request omits top_k.
	DefaultTopK int `koanf:"default_top_k"`

	// MaxTopK caps the top_k a request may ask for.
	MaxTopK int `koanf:"max_top_k"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":5000",
		DatasetPath: "",
		DefaultTopK: 100,
		MaxTopK:     500,
	}
}
