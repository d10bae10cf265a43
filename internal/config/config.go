package config

import (
	"time"

	"github.com/gramcare/caselink/internal/watch"
)

// Config holds runtime settings shared by the patient and doctor CLIs.
//
// Fields:
//   - DatabasePath: path of the SQLite file both processes share.
//   - ProfilePath: path of the JSON identity profile to act as.
//   - PollInterval: period of the watch loop (default 3s).
type Config struct {
	DatabasePath string
	ProfilePath  string
	PollInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "cases.db"
	c.ProfilePath = "profile.json"
	c.PollInterval = watch.DefaultInterval
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
