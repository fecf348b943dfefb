// Package config loads runtime configuration for the supermatch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local SQLite database
//	-s string   name of the persisted store snapshot
//	-i int      new-match poll interval (seconds)
//	-k string   admin secret
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (console, json)
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "1s" or integer
// nanoseconds:
//
//	{
//	  "database_path": "supermatch.db",
//	  "snapshot_name": "supernatural-store",
//	  "match_poll_interval": "1s",
//	  "admin_secret": "88620787",
//	  "log_level": "info",
//	  "log_format": "console"
//	}
//
// Environment variables are not read.
package config
