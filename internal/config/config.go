package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const defaultConfigFile = "i18nsync.toml"

// Config holds where a conversion reads and writes, how the table is
// delimited and how the CLI talks to the user.
type Config struct {
	WorkDir   string `toml:"workdir"`
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`
	TableFile string `toml:"table_file"`
	Delimiter string `toml:"delimiter"`
	Strategy  string `toml:"strategy"`
	Locale    string `toml:"locale"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		InputDir:  "in",
		OutputDir: "out",
		TableFile: "translations.csv",
		Delimiter: ";",
		Strategy:  "prompt",
		Locale:    "en",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load builds the configuration from defaults, an optional TOML file
// (I18NSYNC_CONFIG or ./i18nsync.toml) and environment variables, in that
// order, then validates it.
func Load() (*Config, error) {
	// .env is optional; variables may come from the environment.
	_ = godotenv.Load()

	cfg := Defaults()

	path := os.Getenv("I18NSYNC_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg.applyEnv()

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	for name, dst := range map[string]*string{
		"I18NSYNC_WORKDIR":    &c.WorkDir,
		"I18NSYNC_INPUT_DIR":  &c.InputDir,
		"I18NSYNC_OUTPUT_DIR": &c.OutputDir,
		"I18NSYNC_TABLE_FILE": &c.TableFile,
		"I18NSYNC_DELIMITER":  &c.Delimiter,
		"I18NSYNC_STRATEGY":   &c.Strategy,
		"I18NSYNC_LOCALE":     &c.Locale,
		"LOG_LEVEL":           &c.LogLevel,
		"LOG_FORMAT":          &c.LogFormat,
	} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
}

// DelimiterRune returns the configured delimiter. Call after Validate.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.InputDir) == "" {
		errs = append(errs, "input_dir must not be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, "output_dir must not be empty")
	}
	if strings.TrimSpace(c.TableFile) == "" {
		errs = append(errs, "table_file must not be empty")
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Sprintf("delimiter (%q) must be a single character", c.Delimiter))
	} else if r := c.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		errs = append(errs, fmt.Sprintf("delimiter (%q) cannot be a quote or a line break", c.Delimiter))
	}

	switch c.Strategy {
	case "prompt", "new", "old":
	default:
		errs = append(errs, fmt.Sprintf("strategy (%q) must be one of: prompt, new, old", c.Strategy))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log_level (%q) must be one of: debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log_format (%q) must be one of: text, json", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}
