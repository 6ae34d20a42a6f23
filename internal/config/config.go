package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/spf13/viper"
)

// ThemeConfig holds color overrides on top of a preset.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	DisplayFormat string      `mapstructure:"display_format"`
	Formats       []string    `mapstructure:"formats"`
	Fields        []string    `mapstructure:"fields"`
	LogLevel      string      `mapstructure:"log_level"`
	LogFile       string      `mapstructure:"log_file"`
	Theme         ThemeConfig `mapstructure:"theme"`
}

// DefaultConfigDir returns the default config directory (~/.datepick/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".datepick")
	}
	return filepath.Join(home, ".datepick")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("display_format", dateformat.DefaultDisplay)
	v.SetDefault("formats", dateformat.DefaultPatterns)
	v.SetDefault("fields", []string{"date"})
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "datepick"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DATEPICK_DISPLAY_FORMAT, DATEPICK_LOG_LEVEL, etc.
	v.SetEnvPrefix("DATEPICK")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ErrDisplayNotParsed is returned by Layouts when text written in the
// display format matches none of the parse formats.
var ErrDisplayNotParsed = errors.New("display_format output is not accepted by formats")

// displaySample has a day above 12 so day and month cannot be confused.
var displaySample = calendar.New(2021, time.October, 24)

// Layouts compiles the display format and the ordered parse formats.
// A committed value is written in the display format and must parse
// again when the field is next focused, so the two have to agree.
func (c *Config) Layouts() (dateformat.Layout, []dateformat.Layout, error) {
	displayPattern := c.DisplayFormat
	if displayPattern == "" {
		displayPattern = dateformat.DefaultDisplay
	}
	display, err := dateformat.Compile(displayPattern)
	if err != nil {
		return dateformat.Layout{}, nil, fmt.Errorf("display_format: %w", err)
	}

	patterns := c.Formats
	if len(patterns) == 0 {
		patterns = dateformat.DefaultPatterns
	}
	formats, err := dateformat.CompileAll(patterns)
	if err != nil {
		return dateformat.Layout{}, nil, fmt.Errorf("formats: %w", err)
	}

	text := display.Format(displaySample)
	if d, _, err := dateformat.Match(text, formats, displaySample); err != nil || d != displaySample {
		return dateformat.Layout{}, nil, fmt.Errorf("%w: %q (%s) needs a matching entry in formats", ErrDisplayNotParsed, displayPattern, text)
	}
	return display, formats, nil
}
