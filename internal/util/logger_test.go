package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerConsoleText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerOptions{Level: "info", Console: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", Field{Key: "sheet", Value: "Week 1"}, Field{Key: "row", Value: 7})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] visible row=7 sheet=Week 1")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerOptions{Level: "debug", Console: &buf, Format: FormatJSON})
	require.NoError(t, err)

	logger.Warnf("skipped %d rows", 2)

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "skipped 2 rows", entry.Message)
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := NewLogger(LoggerOptions{Level: "debug", LogFile: path})
	require.NoError(t, err)

	logger.Debug("written to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] written to file")
}

func TestNewLoggerWithoutOutputs(t *testing.T) {
	logger, err := NewLogger(LoggerOptions{})
	require.NoError(t, err)

	assert.NotPanics(t, func() { logger.Error("dropped") })
}

func TestLoggerWithAndSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerOptions{Level: "error", Console: &buf})
	require.NoError(t, err)

	child := logger.With(Field{Key: "file", Value: "a.xlsx"})
	child.Info("not yet")
	assert.Empty(t, buf.String())

	child.SetLevel(LevelDebug)
	child.Info("now")
	assert.Contains(t, buf.String(), "now file=a.xlsx")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, LevelError, parseLogLevel("error"))
	assert.Equal(t, LevelInfo, parseLogLevel("bogus"))
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitLogger(LoggerOptions{Level: "debug", Console: &buf}))
	defer SetLogger(nil)

	LogDebugf("row %d", 3)
	LogWarn("careful")
	LogInfof("%d files", 2)
	LogWarnf("close %s", "a.xlsx")
	LogErrorf("rejected: %v", "missing")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "[DEBUG] row 3")
	assert.Contains(t, lines[1], "[WARN] careful")
	assert.Contains(t, lines[2], "[INFO] 2 files")
	assert.Contains(t, lines[3], "[WARN] close a.xlsx")
	assert.Contains(t, lines[4], "[ERROR] rejected: missing")

	SetLogger(nil)
	assert.NotPanics(t, func() { LogInfo("nobody listens") })
}
