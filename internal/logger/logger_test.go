package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "path", "a.lnk")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "path=a.lnk")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "JSON"}, &buf)
	require.NoError(t, err)

	l.Debug("decoded header", "flags", "HasLinkInfo")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "decoded header", rec["msg"])
	assert.Equal(t, "HasLinkInfo", rec["flags"])
}

func TestNew_BadFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestInit_File(t *testing.T) {
	orig := L
	t.Cleanup(func() { L = orig })

	path := filepath.Join(t.TempDir(), "lnkctl.log")
	closeFn, err := Init(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	L.Info("scan finished", "files", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"files":3`)
}

func TestInit_BadLevelKeepsLogger(t *testing.T) {
	orig := L
	t.Cleanup(func() { L = orig })

	_, err := Init(Config{Level: "loud"})
	require.Error(t, err)
	assert.Same(t, orig, L)
}
