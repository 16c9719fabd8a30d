package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "interview.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}

func TestParseEnv(t *testing.T) {
	t.Setenv(envBaseURL, "http://api.example.com")
	t.Setenv(envCheckInterval, "5s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "http://api.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
	// untouched field keeps the default
	assert.Equal(t, "interview.db", cfg.DatabasePath)
}

func TestParseEnv_BadIntervalIgnored(t *testing.T) {
	t.Setenv(envCheckInterval, "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}

func swapArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = old })
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "http://json.example.com",
		"database_path": "other.db",
		"online_check_interval": "10s"
	}`), 0o600))

	swapArgs(t, []string{"cli", "-c", path})

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "http://json.example.com", cfg.BaseURL)
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	swapArgs(t, []string{"cli"})

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
}

func TestParseFlags(t *testing.T) {
	swapArgs(t, []string{"cli", "-a", "http://flag.example.com", "-i", "7"})

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://flag.example.com", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}
