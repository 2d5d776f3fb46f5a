package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nzyazin/fincalc/pkg/config"
)

func TestNewLoggerSplitsLevelsIntoFiles(t *testing.T) {
	dir := t.TempDir()

	log, cleanup, err := NewLogger(config.LogConfig{Level: "info", Dir: dir})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("calculation done", StringField("scenario", "credit"))
	log.Warn("cache unavailable", ErrorField("error", assert.AnError))
	cleanup()

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	errs, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)

	assert.Contains(t, string(info), `"message":"calculation done"`)
	assert.Contains(t, string(info), `"scenario":"credit"`)
	assert.NotContains(t, string(info), "hidden")
	assert.NotContains(t, string(info), "cache unavailable")
	assert.Contains(t, string(errs), `"message":"cache unavailable"`)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, _, err := NewLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
