// Package config loads configuration from environment variables into typed
// structs using `env` field tags, with a one-time .env bootstrap for local
// development. Load returns an error chain that wraps ErrParsingConfig;
// MustLoad panics, for configuration the process cannot start without.
package config
