package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"silent":  LevelSilent,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(slog.LevelWarn, 0, false))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(slog.LevelWarn, 1, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(slog.LevelWarn, 2, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(slog.LevelDebug, 1, false))
	assert.Equal(t, LevelSilent, LevelFromVerbosity(slog.LevelDebug, 3, true))
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, "text")

	logger.Info("hidden")
	logger.Warn("failed to parse manifest", "manifest", "package.json")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "manifest=package.json")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelDebug, "json").Debug("scan complete", "files", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scan complete", rec["msg"])
	assert.Equal(t, float64(3), rec["files"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
