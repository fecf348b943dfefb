package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/supermatch/internal/flagx"
	"github.com/dmitrijs2005/supermatch/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	DatabasePath      *string         `json:"database_path"`
	SnapshotName      *string         `json:"snapshot_name"`
	MatchPollInterval *timex.Duration `json:"match_poll_interval"`
	AdminSecret       *string         `json:"admin_secret"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
}

// parseJson overlays cfg with values from the file named by -c / -config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SnapshotName != nil {
		cfg.SnapshotName = *jc.SnapshotName
	}
	if jc.MatchPollInterval != nil {
		cfg.MatchPollInterval = jc.MatchPollInterval.Duration
	}
	if jc.AdminSecret != nil {
		cfg.AdminSecret = *jc.AdminSecret
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
