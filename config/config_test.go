package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every HUEPICK_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		config.EnvTheme, config.EnvClipboard, config.EnvColor,
		config.EnvExport, config.EnvLogLevel, config.EnvLogFile,
	} {
		t.Setenv(env, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("file values override defaults", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.yaml", `
theme: light
clipboard: osc52
color: "hsl(210, 50%, 40%)"
export: /tmp/swatches.jsonl
log:
  level: debug
  file: /tmp/huepick.log
`)

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, "osc52", cfg.Clipboard)
		assert.Equal(t, "hsl(210, 50%, 40%)", cfg.Color)
		assert.Equal(t, "/tmp/swatches.jsonl", cfg.Export)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "/tmp/huepick.log", cfg.Log.File)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.yaml", "theme: light\n")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, "auto", cfg.Clipboard)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvTheme, "dark")
		t.Setenv(config.EnvColor, "#336699")
		t.Setenv(config.EnvLogFile, "/var/log/huepick.log")
		path := writeFile(t, "config.yaml", "theme: light\ncolor: '#000000'\n")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.Theme)
		assert.Equal(t, "#336699", cfg.Color)
		assert.Equal(t, "/var/log/huepick.log", cfg.Log.File)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "config.yaml", "theme: [unclosed\n")

		_, err := config.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("sets unset variables", func(t *testing.T) {
		clearEnv(t)
		require.NoError(t, os.Unsetenv(config.EnvTheme))
		path := writeFile(t, ".env", "HUEPICK_THEME=light\n")

		require.NoError(t, config.LoadDotEnv(path))

		assert.Equal(t, "light", os.Getenv(config.EnvTheme))
	})

	t.Run("existing environment wins", func(t *testing.T) {
		t.Setenv(config.EnvClipboard, "system")
		path := writeFile(t, ".env", "HUEPICK_CLIPBOARD=osc52\n")

		require.NoError(t, config.LoadDotEnv(path))

		assert.Equal(t, "system", os.Getenv(config.EnvClipboard))
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"defaults are valid", func(*config.Config) {}, ""},
		{"unknown theme", func(c *config.Config) { c.Theme = "solarized" }, "solarized"},
		{"unknown clipboard", func(c *config.Config) { c.Clipboard = "fax" }, "fax"},
		{"invalid color", func(c *config.Config) { c.Color = "#12345" }, "color"},
		{"invalid log level", func(c *config.Config) { c.Log.Level = "loud" }, "log level"},
		{"rgb color", func(c *config.Config) { c.Color = "rgb(1, 2, 3)" }, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_InitialColor(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	c, err := cfg.InitialColor()

	require.NoError(t, err)
	assert.Equal(t, huepick.DefaultColor, c)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	assert.Equal(t, filepath.Join("/xdg", "huepick", "config.yaml"), config.DefaultPath())
}
