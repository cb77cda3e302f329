package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{" info ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.NotContains(t, out, "info message")
	require.Contains(t, out, "[WARN] warn message")
	require.Contains(t, out, "[ERROR] error message")
}

func TestLogger_EnvVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emony.log")
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFile, path)

	l := New()
	l.Debug("lead %s stored", "abc")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "[DEBUG] lead abc stored")
}

func TestLogger_Configure(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFile, "")

	l := New()
	require.Error(t, l.Configure("loud", ""))

	path := filepath.Join(t.TempDir(), "emony.log")
	require.NoError(t, l.Configure("error", path))
	l.Warn("dropped")
	l.Error("kept")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "closing twice is a no-op")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(content), "dropped")
	require.Contains(t, string(content), "kept")
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelInfo)

	w := l.Writer(LevelInfo)
	n, err := w.Write([]byte("GET /healthz 200\n\nPOST /api/leads/loan 201\n"))
	require.NoError(t, err)
	require.Equal(t, 43, n)

	out := buf.String()
	require.Contains(t, out, "[INFO] GET /healthz 200")
	require.Contains(t, out, "[INFO] POST /api/leads/loan 201")

	buf.Reset()
	_, _ = l.Writer(LevelDebug).Write([]byte("hidden\n"))
	require.Empty(t, buf.String())
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	Default.SetLevel(LevelDebug)
	defer Default.SetLevel(LevelInfo)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	out := buf.String()
	require.Contains(t, out, "[DEBUG] d")
	require.Contains(t, out, "[INFO] i")
	require.Contains(t, out, "[WARN] w")
	require.Contains(t, out, "[ERROR] e")
}
