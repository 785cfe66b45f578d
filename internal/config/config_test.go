package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"I18NSYNC_CONFIG", "I18NSYNC_WORKDIR", "I18NSYNC_INPUT_DIR", "I18NSYNC_OUTPUT_DIR",
		"I18NSYNC_TABLE_FILE", "I18NSYNC_DELIMITER", "I18NSYNC_STRATEGY", "I18NSYNC_LOCALE",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	want := Defaults()
	want.WorkDir = wd
	assert.Equal(t, want, cfg)
	assert.Equal(t, ';', cfg.DelimiterRune())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
workdir = "/srv/translations"
input_dir = "source"
delimiter = ","
strategy = "old"
locale = "fr"
`), 0o644))
	t.Setenv("I18NSYNC_CONFIG", path)
	t.Setenv("I18NSYNC_STRATEGY", "new")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/translations", cfg.WorkDir)
	assert.Equal(t, "source", cfg.InputDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, "new", cfg.Strategy)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	clearEnv(t)
	t.Setenv("I18NSYNC_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("delimiter = \n"), 0o644))
	t.Setenv("I18NSYNC_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
		errs   []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "tab delimiter", mutate: func(c *Config) { c.Delimiter = "\t" }},
		{name: "long delimiter", mutate: func(c *Config) { c.Delimiter = ";;" }, errs: []string{"delimiter"}},
		{name: "quote delimiter", mutate: func(c *Config) { c.Delimiter = `"` }, errs: []string{"quote or a line break"}},
		{name: "strategy", mutate: func(c *Config) { c.Strategy = "guess" }, errs: []string{"strategy"}},
		{
			name: "several",
			mutate: func(c *Config) {
				c.InputDir = " "
				c.TableFile = ""
				c.LogLevel = "loud"
				c.LogFormat = "xml"
			},
			errs: []string{"input_dir", "table_file", "log_level", "log_format"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			err := cfg.Validate()
			if len(tc.errs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.errs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
