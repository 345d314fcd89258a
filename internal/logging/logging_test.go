package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_AppendsToDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	now := time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC)

	for _, msg := range []string{"first", "second"} {
		log, closeFn, err := Open(dir, "debug", now)
		require.NoError(t, err)
		log.Debug(msg, "k", "v")
		require.NoError(t, closeFn())
	}

	b, err := os.ReadFile(filepath.Join(dir, "dial_2025-07-16.log"))
	require.NoError(t, err)
	out := string(b)
	require.Contains(t, out, "msg=first")
	require.Contains(t, out, "msg=second")
	require.NotContains(t, out, "\x1b[")
}

func TestOpen_RespectsLevel(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC)
	log, closeFn, err := Open(dir, "warn", now)
	require.NoError(t, err)
	log.Info("quiet")
	log.Warn("loud")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(filepath.Join(dir, FileName(now)))
	require.NoError(t, err)
	require.False(t, strings.Contains(string(b), "quiet"))
	require.True(t, strings.Contains(string(b), "loud"))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)

	_, _, err = Open(t.TempDir(), "loud", time.Now())
	require.Error(t, err)
}
