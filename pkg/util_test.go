package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	log, err := InitLog(path, "client", zapcore.InfoLevel)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("game_move")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game_move")
	assert.Contains(t, string(data), "client")
	assert.NotContains(t, string(data), "hidden")
}

func TestInitLogDiscard(t *testing.T) {
	log, err := InitLog("", "client", zapcore.DebugLevel)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestInitLogBadPath(t *testing.T) {
	dir := t.TempDir()
	_, err := InitLog(dir, "client", zapcore.InfoLevel)
	assert.Error(t, err)
}
