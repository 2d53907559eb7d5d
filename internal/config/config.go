// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer file and environment sources on top via Load.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultMinuteMax is the cutoff applied when a request does not
	// carry an explicit minute parameter.
	DefaultMinuteMax int `koanf:"default_minute_max"`

	// RateLimitPerMinute caps requests per client IP. Zero disables
	// rate limiting.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`

	// SeedFixture optionally points at a match JSON fixture loaded into
	// the store at startup.
	SeedFixture string `koanf:"seed_fixture"`
}

// New creates a Config with defaults. Context is accepted first to
// match the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8080",
		DefaultMinuteMax:   90,
		RateLimitPerMinute: 600,
		SeedFixture:        "",
	}
}
