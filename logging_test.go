package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupLoggerWritesRotatingFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "site.log")

	closer, err := setupLogger(Config{LogLevel: "info", LogFile: path})
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	log.Info().Str("section", "footer").Msg("rendered")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"section":"footer"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	restoreLogger(t)

	_, err := setupLogger(Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestSetupLoggerStdoutOnly(t *testing.T) {
	restoreLogger(t)

	closer, err := setupLogger(Config{LogLevel: "warn"})
	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
