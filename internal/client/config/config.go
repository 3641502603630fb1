// Package config loads runtime settings for the BrainStorm CLI.
package config

import "time"

// Config holds runtime settings for the BrainStorm CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, e.g. "https://api.example.com".
//   - RequestTimeout: per-request deadline applied by the gateway.
//   - DatabaseDSN: SQLite DSN for the local session store.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "brainstorm.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
