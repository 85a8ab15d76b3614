// Package config handles configuration for the finview client: defaults,
// optional .env and environment variables, an optional JSON file, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the finview CLI.
//
// Fields:
//   - ServerBaseURL: root URL of the backend, no trailing slash needed.
//   - RequestTimeout: per-request timeout on the HTTP transport.
//   - CookieDBPath: SQLite file holding the persisted session cookie.
//   - LogLevel: debug|info|warn|error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	CookieDBPath   string
	LogLevel       string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.CookieDBPath = "finview.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// values from a JSON file (if one is named with -c/-config), environment
// variables, and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
