// Package config loads the optional YAML settings file shared by the client
// and the ssh host.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	yaml "gopkg.in/yaml.v3"

	"github.com/qnkhuat/checkerterm/pkg/gui"
)

var ErrInvalidConfig = errors.New("invalid config")

type Players struct {
	Red  string `yaml:"red"`
	Blue string `yaml:"blue"`
}

type SSH struct {
	Addr        string        `yaml:"addr"`
	HostKey     string        `yaml:"host_key"`
	Binary      string        `yaml:"binary"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

type Config struct {
	SquareWidth  int            `yaml:"square_width"`
	SquareHeight int            `yaml:"square_height"`
	Theme        string         `yaml:"theme"`
	Themes       []gui.ThemeHex `yaml:"themes"`
	Players      Players        `yaml:"players"`
	Snapshot     string         `yaml:"snapshot"`
	LogFile      string         `yaml:"log_file"`
	LogLevel     string         `yaml:"log_level"`
	SSH          SSH            `yaml:"ssh"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		SquareWidth:  5,
		SquareHeight: 2,
		Theme:        gui.ThemeBasic.Name,
		Players:      Players{Red: "RED", Blue: "BLUE"},
		LogLevel:     "info",
		SSH: SSH{
			Addr:        ":2222",
			Binary:      "checkerterm",
			IdleTimeout: 5 * time.Minute,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(raw); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the values that the rest of the program relies on
func (c *Config) Validate() error {
	if c.SquareWidth < 1 || c.SquareHeight < 1 {
		return fmt.Errorf("%w: square size must be at least 1x1, got %dx%d", ErrInvalidConfig, c.SquareWidth, c.SquareHeight)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.ResolveTheme(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative idle timeout", ErrInvalidConfig)
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// ResolveTheme picks Theme from the configured overrides or the built in set
func (c *Config) ResolveTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}
