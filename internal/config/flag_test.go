package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-d", "night.db", "-s", "snap", "-i", "5", "-k", "moon", "-l", "debug", "-f", "json"},
			expected: &Config{
				DatabasePath:      "night.db",
				SnapshotName:      "snap",
				MatchPollInterval: 5 * time.Second,
				AdminSecret:       "moon",
				LogLevel:          "debug",
				LogFormat:         "json",
			},
		},
		{
			name:     "config flag is ignored here",
			args:     []string{"cmd", "-c", "some.json", "-d", "x.db"},
			expected: &Config{DatabasePath: "x.db"},
		},
		{
			name:        "incorrect poll interval",
			args:        []string{"cmd", "-i", "abc"},
			expectPanic: true,
		},
	}

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondIntervalWhenUnset(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cmd", "-d", "x.db"}

	cfg := &Config{MatchPollInterval: 1500 * time.Millisecond}
	parseFlags(cfg)

	assert.Equal(t, 1500*time.Millisecond, cfg.MatchPollInterval)
}
