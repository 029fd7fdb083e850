package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("debug"))
	require.Equal(t, LevelInfo, ParseLevel("INFO"))
	require.Equal(t, LevelError, ParseLevel("Error"))
	require.Equal(t, LevelWarn, ParseLevel("bogus"))
}

func TestLogger_WritesAtOrAboveMinLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.log")

	l, err := New(path, LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Error("also shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "INFO: shown 2")
	require.Contains(t, string(data), "ERROR: also shown")
}

func TestLogger_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "shell.log")

	l, err := New(path, LevelDebug)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("ignored")
	require.NoError(t, l.Close())
}
