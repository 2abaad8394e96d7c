// Package config handles configuration loading and validation for board.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/pkg/tmpl"
)

// Storage drivers.
const (
	DriverJSONFile = "jsonfile"
	DriverBadger   = "badger"
	DriverRedis    = "redis"
)

// Supported display locales.
const (
	LocaleES = "es"
	LocaleEN = "en"
)

// EnvPrefix prefixes every environment override, e.g. BOARD_STORAGE_DRIVER.
const EnvPrefix = "board"

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Export  ExportConfig  `yaml:"export"`
	DataDir string        `yaml:"-" ignored:"true"` // set by caller, not from config file
}

// StorageConfig selects and configures the persistence driver.
type StorageConfig struct {
	Driver string      `yaml:"driver"`
	Key    string      `yaml:"key"`
	Path   string      `yaml:"path"` // jsonfile file or badger directory; defaults under DataDir
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis driver.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DisplayConfig controls how timestamps are shown.
type DisplayConfig struct {
	Locale   string `yaml:"locale"`
	Timezone string `yaml:"timezone"`
}

// ExportConfig controls backup documents.
type ExportConfig struct {
	Dir      string `yaml:"dir"`
	Filename string `yaml:"filename"` // template, see FilenameData
	Pattern  string `yaml:"pattern"`  // glob used to list existing backups
	Note     string `yaml:"note"`
}

// FilenameData defines available fields for the export filename template.
type FilenameData struct {
	Date  string // YYYY-MM-DD
	Count int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: DriverJSONFile,
			Key:    comment.DefaultKey,
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Display: DisplayConfig{
			Locale:   LocaleES,
			Timezone: "Local",
		},
		Export: ExportConfig{
			Dir:      ".",
			Filename: "comments-backup-{{ .Date }}.json",
			Pattern:  "comments-backup-*.json",
			Note:     "Comment backup exported from local storage",
		},
	}
}

// Load reads configuration from the given path, applies BOARD_* environment
// overrides and sets the data directory. If configPath is empty or doesn't
// exist, defaults are used.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.DataDir = dataDir

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}
	if c.Display.Locale == "" {
		c.Display.Locale = defaults.Display.Locale
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = defaults.Display.Timezone
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaults.Export.Dir
	}
	if c.Export.Filename == "" {
		c.Export.Filename = defaults.Export.Filename
	}
	if c.Export.Pattern == "" {
		c.Export.Pattern = defaults.Export.Pattern
	}
}

// Validate checks that the configuration is valid. All problems are reported
// together as criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", errors.New("data directory cannot be empty"))
	}

	switch c.Storage.Driver {
	case DriverJSONFile, DriverBadger:
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			errs = errs.Append("storage.redis.addr", errors.New("required when driver is redis"))
		}
	default:
		errs = errs.Append("storage.driver",
			fmt.Errorf("unknown driver %q (want jsonfile, badger or redis)", c.Storage.Driver))
	}

	if c.Storage.Key == "" {
		errs = errs.Append("storage.key", errors.New("cannot be empty"))
	}

	switch c.Display.Locale {
	case LocaleES, LocaleEN:
	default:
		errs = errs.Append("display.locale", fmt.Errorf("unsupported locale %q (want es or en)", c.Display.Locale))
	}

	if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
		errs = errs.Append("display.timezone", err)
	}

	if _, err := c.ExportFilename(time.Now(), 0); err != nil {
		errs = errs.Append("export.filename", err)
	}

	if !doublestar.ValidatePattern(c.Export.Pattern) {
		errs = errs.Append("export.pattern", fmt.Errorf("invalid glob %q", c.Export.Pattern))
	}

	return errs.ToError()
}

// StoragePath returns the file (jsonfile) or directory (badger) used by the
// local storage drivers.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	if c.Storage.Driver == DriverBadger {
		return filepath.Join(c.DataDir, "badger")
	}
	return filepath.Join(c.DataDir, "comments.json")
}

// Location returns the configured display time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ExportFilename renders the export filename template for a backup taken at t.
func (c *Config) ExportFilename(t time.Time, count int) (string, error) {
	name, err := tmpl.Render(c.Export.Filename, FilenameData{
		Date:  t.UTC().Format(time.DateOnly),
		Count: count,
	})
	if err != nil {
		return "", err
	}

	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("filename %q must be a plain file name", name)
	}

	return name, nil
}
