package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/nsconf/logging"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "INFO"}, &buf)

	logger.Info("variable written", slog.String("path", "a/x"))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	assert.Equal(t, "variable written", logEntry["msg"])
	assert.Equal(t, "a/x", logEntry["path"])
	assert.Equal(t, "INFO", logEntry["level"])
}

func TestNewLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug", Format: "TEXT"}, &buf)

	logger.Debug("variable deleted", slog.String("path", "a/x"))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="variable deleted"`)
	assert.Contains(t, buf.String(), "path=a/x")
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{name: "debug logs debug", configLevel: "DEBUG", logLevel: slog.LevelDebug, shouldLog: true},
		{name: "warning alias", configLevel: "WARNING", logLevel: slog.LevelWarn, shouldLog: true},
		{name: "info drops debug", configLevel: "INFO", logLevel: slog.LevelDebug, shouldLog: false},
		{name: "error drops warn", configLevel: "ERROR", logLevel: slog.LevelWarn, shouldLog: false},
		{name: "empty defaults to info", configLevel: "", logLevel: slog.LevelInfo, shouldLog: true},
		{name: "invalid defaults to info", configLevel: "LOUD", logLevel: slog.LevelDebug, shouldLog: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &buf)
			logger.Log(context.Background(), testCase.logLevel, "message")

			if testCase.shouldLog {
				require.NotEmpty(t, buf.String(), "log should be written")
			} else {
				require.Empty(t, buf.String(), "log should not be written")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Error("dropped")
}
