package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should create logger with default config", func(t *testing.T) {
		l, err := New(DefaultConfig())
		require.NoError(t, err)
		defer l.Close()

		assert.NotNil(t, l)
	})

	t.Run("should fall back to info level for unknown levels", func(t *testing.T) {
		l, err := New(Config{Level: "verbose"})
		require.NoError(t, err)
		defer l.Close()

		assert.Equal(t, zerolog.InfoLevel, l.GetZerolog().GetLevel())
	})

	t.Run("should write to the configured file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "aigate.log")

		l, err := New(Config{Level: "info", File: logFile})
		require.NoError(t, err)

		zl := l.GetZerolog()
		zl.Info().Msg("file sink works")
		require.NoError(t, l.Close())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "file sink works")
	})

	t.Run("should redact secrets in the output", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "aigate.log")

		l, err := New(Config{Level: "info", File: logFile, Redaction: true})
		require.NoError(t, err)

		zl := l.GetZerolog()
		zl.Info().Str("key", "sk-abcdefghijklmnopqrstuvwxyz123456").Msg("configured provider")
		require.NoError(t, l.Close())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "sk-abcdefghijklmnopqrstuvwxyz123456")
		assert.Contains(t, string(content), "[REDACTED]")
	})
}
