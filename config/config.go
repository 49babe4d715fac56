// Package config loads huepick settings from a YAML file, a .env file, and
// HUEPICK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/clipboard"
	"github.com/fwojciec/huepick/lipgloss"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvTheme     = "HUEPICK_THEME"
	EnvClipboard = "HUEPICK_CLIPBOARD"
	EnvColor     = "HUEPICK_COLOR"
	EnvExport    = "HUEPICK_EXPORT"
	EnvLogLevel  = "HUEPICK_LOG_LEVEL"
	EnvLogFile   = "HUEPICK_LOG_FILE"
)

// Config holds user settings.
type Config struct {
	Theme     string    `yaml:"theme"`     // dark, light
	Clipboard string    `yaml:"clipboard"` // auto, pbcopy, system, osc52
	Color     string    `yaml:"color"`     // initial color in hex, rgb() or hsl() notation
	Export    string    `yaml:"export"`    // JSONL path written with the history at exit
	Log       LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // interactive sessions log only here
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:     "dark",
		Clipboard: clipboard.BackendAuto,
		Color:     huepick.DefaultColor.Hex(),
		Log:       LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/huepick/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "huepick", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "huepick", "config.yaml")
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	for env, field := range map[string]*string{
		EnvTheme:     &c.Theme,
		EnvClipboard: &c.Clipboard,
		EnvColor:     &c.Color,
		EnvExport:    &c.Export,
		EnvLogLevel:  &c.Log.Level,
		EnvLogFile:   &c.Log.File,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*field = v
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := lipgloss.ThemeByName(c.Theme); err != nil {
		return err
	}
	if !slices.Contains(clipboard.Backends, c.Clipboard) {
		return fmt.Errorf("unknown clipboard %q (want one of %s)", c.Clipboard, strings.Join(clipboard.Backends, ", "))
	}
	if _, err := huepick.ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// InitialColor returns the parsed initial color.
func (c *Config) InitialColor() (huepick.Color, error) {
	return huepick.ParseColor(c.Color)
}
