// Package config assembles the runtime settings of the interview client.
// Sources are layered: built-in defaults, then a .env file / environment,
// then an optional JSON file (-c), then command-line flags. Later sources
// win.
package config

import "time"

// Config holds runtime settings for the interview CLI.
//
// Fields:
//   - BaseURL: root URL of the backend HTTP API.
//   - DatabasePath: sqlite file holding the persisted credential.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	BaseURL             string
	DatabasePath        string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.DatabasePath = "interview.db"
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env honored), a JSON file (if given) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
