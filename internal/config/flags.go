package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/supermatch/internal/flagx"
)

// parseFlags populates cfg from the short command-line flags listed in the
// package doc. Unknown arguments are filtered out first so that -c/-config
// does not trip this flag set. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-i", "-k", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.SnapshotName, "s", cfg.SnapshotName, "name of the store snapshot")
	pollInterval := fs.Int("i", int(cfg.MatchPollInterval.Seconds()), "new-match poll interval (in seconds)")
	fs.StringVar(&cfg.AdminSecret, "k", cfg.AdminSecret, "admin secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (console|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.MatchPollInterval = time.Duration(*pollInterval) * time.Second
		}
	})
}
