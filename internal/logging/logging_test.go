package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNewLoggerFromConfig_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "warn",
		Format: "json",
		Writer: &buf,
	})
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestNewLoggerFromConfig_AutoOnBufferIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "auto", Writer: &buf})
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNewLoggerFromConfig_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "console", NoColor: true, Writer: &buf})
	logger.Info().Msg("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, `"message"`)
}

func TestNewLoggerFromConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solve.log")
	logger, closer := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "json", Output: path})
	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := logging.WithLogger(context.Background(), logger)
	ctxLogger := logging.FromContext(ctx)
	ctxLogger.Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	// Missing logger is a no-op, not a panic.
	nopLogger := logging.FromContext(context.Background())
	nopLogger.Info().Msg("dropped")
}
