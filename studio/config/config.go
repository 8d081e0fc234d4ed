package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvLibraryDir    = "PENSCAPE_LIBRARY_DIR"
	EnvListenAddr    = "PENSCAPE_LISTEN_ADDR"
	EnvLogLevel      = "PENSCAPE_LOG_LEVEL"
	EnvLogFormat     = "PENSCAPE_LOG_FORMAT"
	EnvDailySchedule = "PENSCAPE_DAILY_SCHEDULE"
	EnvTimezone      = "PENSCAPE_TZ"
	EnvBingURL       = "PENSCAPE_BING_URL"
)

// DefaultBingURL is the image-of-the-day metadata endpoint.
const DefaultBingURL = "https://www.bing.com/HPImageArchive.aspx?format=js&idx=0&n=1&mkt=en-US"

// Config holds all configuration for the studio
type Config struct {
	// Directory holding the theme library
	LibraryDir string `yaml:"library_dir" validate:"required"`

	// Address the HTTP API listens on
	ListenAddr string `yaml:"listen_addr" validate:"required,hostname_port"`

	// Uploaded images are scaled down to fit these bounds
	MaxWidth  int `yaml:"max_width" validate:"gt=0"`
	MaxHeight int `yaml:"max_height" validate:"gt=0"`

	// Cron expression for the daily image theme, empty disables it
	DailySchedule string `yaml:"daily_schedule"`
	Timezone      string `yaml:"timezone"`
	BingURL       string `yaml:"bing_url" validate:"omitempty,url"`

	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		LibraryDir:    "penscape",
		ListenAddr:    "127.0.0.1:8080",
		MaxWidth:      1600,
		MaxHeight:     1600,
		DailySchedule: "0 11 * * *",
		Timezone:      "UTC",
		BingURL:       DefaultBingURL,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// WithLibraryDir sets the theme library directory
func (c *Config) WithLibraryDir(dir string) *Config {
	c.LibraryDir = dir
	return c
}

// WithListenAddr sets the HTTP listen address
func (c *Config) WithListenAddr(addr string) *Config {
	c.ListenAddr = addr
	return c
}

// WithMaxSize sets the image bounding box
func (c *Config) WithMaxSize(width, height int) *Config {
	c.MaxWidth = width
	c.MaxHeight = height
	return c
}

// WithDailySchedule sets the cron expression for the daily theme
func (c *Config) WithDailySchedule(expr string) *Config {
	c.DailySchedule = expr
	return c
}

// WithTimezone sets the scheduler timezone
func (c *Config) WithTimezone(tz string) *Config {
	c.Timezone = tz
	return c
}

// WithBingURL sets the image-of-the-day endpoint
func (c *Config) WithBingURL(url string) *Config {
	c.BingURL = url
	return c
}

// WithLogLevel sets the log level
func (c *Config) WithLogLevel(level string) *Config {
	c.Logging.Level = level
	return c
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PENSCAPE_* environment variables.
func (c *Config) ApplyEnv() *Config {
	set := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvLibraryDir, &c.LibraryDir)
	set(EnvListenAddr, &c.ListenAddr)
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)
	set(EnvDailySchedule, &c.DailySchedule)
	set(EnvTimezone, &c.Timezone)
	set(EnvBingURL, &c.BingURL)
	return c
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves the scheduler timezone, falling back to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
