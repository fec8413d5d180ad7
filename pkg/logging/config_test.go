package logging_test

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seasonhq/scorecard/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig writes to a file", func(t *testing.T) {
		tmpfile, err := os.CreateTemp("", "test-log-*.txt")
		require.NoError(t, err)
		defer os.Remove(tmpfile.Name())
		defer tmpfile.Close()

		cfg := &logging.Config{
			Level:  "debug",
			Format: "json",
			Output: tmpfile.Name(),
		}
		logger := logging.NewLoggerFromConfig(cfg)
		logger.Debug().Str("component", "merge").Msg("configured logger works")

		data, err := os.ReadFile(tmpfile.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "configured logger works")
		assert.Contains(t, string(data), `"component":"merge"`)
	})

	t.Run("nil config falls back to defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "bogus"})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "WARN"})
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})
}

func TestNewLogger(t *testing.T) {
	var buf strings.Builder
	logger := logging.New(&buf)
	logger.Info().Str("source", "alice.json").Msg("document loaded")

	assert.Contains(t, buf.String(), "document loaded")
	assert.Contains(t, buf.String(), `"source":"alice.json"`)
}
