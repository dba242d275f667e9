package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/ramadankeeper/internal/flagx"
	"github.com/dmitrijs2005/ramadankeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the fetch timeout either as a string
// like "3s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath        string         `json:"database_path"`
	CatalogURL          string         `json:"catalog_url"`
	CatalogFetchTimeout timex.Duration `json:"catalog_fetch_timeout"`
	CurrentDay          int            `json:"current_day"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags (flagx.JsonConfigFlags); when absent,
// nothing is loaded. Read or unmarshal errors panic, matching the strictness
// of flag parsing. Intended usage is defaults -> parseJson -> parseFlags,
// where later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CatalogURL != "" {
		cfg.CatalogURL = jc.CatalogURL
	}
	if jc.CatalogFetchTimeout.Duration > 0 {
		cfg.CatalogFetchTimeout = time.Duration(jc.CatalogFetchTimeout.Duration)
	}
	if jc.CurrentDay > 0 {
		cfg.CurrentDay = jc.CurrentDay
	}
}
