package infrastructure

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestSlogLoggerAdapter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(LoggerParams{Level: "info", Format: "json", Output: &buf})

	logger.Info("Update accepted", ports.F("service", "wundr"), ports.F("attempt", 2))
	logger.Error("Fetch failed", ports.F("error", stderrors.New("timeout")))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Update accepted", entries[0]["msg"])
	assert.Equal(t, "wundr", entries[0]["service"])
	assert.Equal(t, float64(2), entries[0]["attempt"])
	assert.Equal(t, "wristweather", entries[0]["app"])
	assert.Equal(t, "timeout", entries[1]["error"])
}

func TestSlogLoggerAdapter_SetDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(LoggerParams{Level: "info", Output: &buf})

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetDebug(true)
	logger.Debug("visible")
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])

	buf.Reset()
	logger.SetDebug(false)
	logger.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestSlogLoggerAdapter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(LoggerParams{Level: "debug", Format: "text", Output: &buf})

	logger.Warn("Debug sink post failed", ports.F("url", "http://sink"))

	assert.Contains(t, buf.String(), "Debug sink post failed")
	assert.Contains(t, buf.String(), "http://sink")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(name))
		})
	}
}
