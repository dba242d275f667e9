// Package config holds runtime settings for the tracker CLI and the
// defaults -> JSON file -> flags loading pipeline.
package config

import "time"

// Config holds runtime settings for the tracker.
//
// Fields:
//   - DatabasePath: path of the local SQLite database holding all state.
//   - CatalogURL: endpoint of the resource catalog document; empty means
//     use the built-in fallback set without fetching.
//   - CatalogFetchTimeout: per-attempt timeout for the catalog fetch.
//   - CurrentDay: the current day of the 30-day period (1..30), used for
//     highlighting and the remaining-days counter.
type Config struct {
	DatabasePath        string
	CatalogURL          string
	CatalogFetchTimeout time.Duration
	CurrentDay          int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "tracker.db"
	c.CatalogURL = ""
	c.CatalogFetchTimeout = 3 * time.Second
	c.CurrentDay = 10
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
