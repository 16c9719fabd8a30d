package config

import (
	"encoding/json"
	"os"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/flagx"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can spell the interval either as a string like
// "30s" or as integer nanoseconds.
type JSONConfig struct {
	BaseURL             string         `json:"base_url"`
	DatabasePath        string         `json:"database_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flag. With no flag, nothing is loaded. Read or parse errors
// panic; config problems should stop the program immediately.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
