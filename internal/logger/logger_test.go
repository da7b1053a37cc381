package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Output: &buf})
	Error("dropped")
	require.Empty(t, buf.String())
}

func TestInit_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelInfo})
	t.Cleanup(func() { Init(Options{}) })

	Debug("hidden")
	Info("decoded", "packets", 3)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=decoded")
	require.Contains(t, buf.String(), "packets=3")
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug, JSON: true})
	t.Cleanup(func() { Init(Options{}) })

	Warn("padding", "bits", 7)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "WARN", rec["level"])
	require.Equal(t, "padding", rec["msg"])
	require.InDelta(t, 7, rec["bits"], 0)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		enabled bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"off", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, enabled, err := ParseLevel(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.enabled, enabled)
		})
	}

	_, _, err := ParseLevel("loud")
	require.Error(t, err)
}
