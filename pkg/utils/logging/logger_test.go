package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_WritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	now := time.Date(2026, time.March, 6, 7, 30, 0, 0, time.UTC)

	logger, path, err := newLogger(Options{Env: "test", Dir: dir}, zapcore.AddSync(&console), now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "test_2026-03-06_07-30-00.log"), path)

	logger.Debug("debug only in file")
	logger.Info("plan assembled", zap.Int("days", 4))
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "plan assembled")
	assert.NotContains(t, console.String(), "debug only in file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "plan assembled", entry["msg"])
	assert.Equal(t, float64(4), entry["days"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLogger_Verbose(t *testing.T) {
	var console bytes.Buffer

	logger, _, err := newLogger(Options{Dir: t.TempDir(), Verbose: true}, zapcore.AddSync(&console), time.Now())
	require.NoError(t, err)

	logger.Debug("cluster ordered")
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "cluster ordered")
}

func TestNewLogger_DefaultEnvName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

	_, path, err := newLogger(Options{Dir: dir}, zapcore.AddSync(&bytes.Buffer{}), now)
	require.NoError(t, err)

	assert.Equal(t, "default_2026-01-02_03-04-05.log", filepath.Base(path))
}
