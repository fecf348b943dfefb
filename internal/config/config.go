package config

import (
	"time"

	"github.com/dmitrijs2005/supermatch/internal/common"
)

// Config holds runtime settings for the supermatch CLI.
type Config struct {
	DatabasePath      string
	SnapshotName      string
	MatchPollInterval time.Duration
	AdminSecret       string
	LogLevel          string
	LogFormat         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "supermatch.db"
	c.SnapshotName = common.DefaultSnapshotName
	c.MatchPollInterval = 1 * time.Second
	c.AdminSecret = common.DefaultAdminSecret
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
