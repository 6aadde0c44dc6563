package internal

import "time"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	clock   func() time.Time
	mcpMode bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithClock overrides the wall clock used for undated memory content.
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.clock = now
	}
}

// WithMCP switches the application to stdio MCP mode instead of the HTTP
// server.
func WithMCP(enabled bool) Option {
	return func(a *application) {
		a.mcpMode = enabled
	}
}
