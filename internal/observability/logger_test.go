package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggingConfig(t *testing.T) {
	cfg := DefaultLoggingConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddSource)
}

func TestNewLogger(t *testing.T) {
	t.Run("creates logger with default config", func(t *testing.T) {
		logger := NewLogger(DefaultLoggingConfig())
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("creates logger with debug level", func(t *testing.T) {
		logger := NewLogger(LoggingConfig{Level: "debug", Format: "json", Output: "stdout"})
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("creates logger with pretty format", func(t *testing.T) {
		logger := NewLogger(LoggingConfig{Level: "warn", Format: "pretty", Output: "stderr"})
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
}

func TestNewLoggerTo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerTo(LoggingConfig{Level: "info", Format: "json"}, &buf)
		logger.Debug().Msg("hidden")
		logger.Info().Str("root", "PubmedArticleSet").Msg("decoded")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "decoded", entry["message"])
		assert.Equal(t, "PubmedArticleSet", entry["root"])
		assert.Contains(t, entry, "time")
	})

	t.Run("console output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerTo(LoggingConfig{Level: "info", Format: "console"}, &buf)
		logger.Info().Msg("plain text")

		assert.Contains(t, buf.String(), "plain text")
		assert.NotContains(t, buf.String(), `"message"`)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestWithRunContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	enriched := WithRunContext(logger, "run-123", "validate")
	enriched.Info().Msg("run started")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "run-123", logEntry["run_id"])
	assert.Equal(t, "validate", logEntry["command"])
}

func TestLoggerContextChaining(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	enriched := WithDocumentContext(logger, "pubmed24n0001.xml.gz", "PubmedArticleSet")
	enriched = WithCitationContext(enriched, "12345678", 3)
	enriched.Warn().Msg("citation skipped")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "pubmed24n0001.xml.gz", logEntry["path"])
	assert.Equal(t, "PubmedArticleSet", logEntry["root"])
	assert.Equal(t, "12345678", logEntry["pmid"])
	assert.Equal(t, float64(3), logEntry["index"])
}
