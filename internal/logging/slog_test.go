package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newJSONTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestSlogLogger_Levels_WriteJSONRecords(t *testing.T) {
	log, buf := newJSONTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	recs := decodeLines(t, buf)
	require.Len(t, recs, 4)

	want := []struct {
		level, msg, key string
	}{
		{"DEBUG", "dbg", "a"},
		{"INFO", "inf", "b"},
		{"WARN", "wrn", "c"},
		{"ERROR", "err", "d"},
	}
	for i, w := range want {
		require.Equal(t, w.level, recs[i]["level"])
		require.Equal(t, w.msg, recs[i]["msg"])
		require.Contains(t, recs[i], w.key)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newJSONTestLogger(t)

	log.With("snapshot", "supernatural-store").Info(context.TODO(), "saved", "revision", 7)

	recs := decodeLines(t, buf)
	require.Len(t, recs, 1)
	require.Equal(t, "supernatural-store", recs[0]["snapshot"])
	require.EqualValues(t, 7, recs[0]["revision"])
}
