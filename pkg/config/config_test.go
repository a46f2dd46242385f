package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/qnkhuat/checkerterm/pkg/gui"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkerterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5, cfg.SquareWidth)
	assert.Equal(t, 2, cfg.SquareHeight)
	assert.Equal(t, ":2222", cfg.SSH.Addr)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout)

	th, err := cfg.ResolveTheme()
	require.NoError(t, err)
	assert.Equal(t, gui.ThemeBasic, th)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
square_width: 7
square_height: 3
theme: mine
themes:
  - name: mine
    squareDark: "#102030"
players:
  red: Alice
snapshot: /tmp/end.png
log_level: debug
ssh:
  addr: ":2022"
  idle_timeout: 90s
`))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.SquareWidth)
	assert.Equal(t, 3, cfg.SquareHeight)
	assert.Equal(t, "Alice", cfg.Players.Red)
	assert.Equal(t, "BLUE", cfg.Players.Blue, "unset fields keep their default")
	assert.Equal(t, "/tmp/end.png", cfg.Snapshot)
	assert.Equal(t, ":2022", cfg.SSH.Addr)
	assert.Equal(t, "checkerterm", cfg.SSH.Binary)
	assert.Equal(t, 90*time.Second, cfg.SSH.IdleTimeout)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	th, err := cfg.ResolveTheme()
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0x102030), th.SquareDark)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour: red\n",
		"bad square":    "square_width: 0\n",
		"bad level":     "log_level: loud\n",
		"bad theme":     "theme: neon\n",
		"bad duration":  "ssh:\n  idle_timeout: soon\n",
		"bad yaml":      "square_width: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
