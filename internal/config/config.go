// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for tracechat.
//
// Supports TOML, JSON and YAML configuration formats, with defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.tracechat/config.toml
//   - ~/.tracechat/config.json
//   - ~/.tracechat/config.yaml
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/tracechat-tui/internal/util"
)

// Limits and defaults.
const (
	DefaultTheme         = "dark"
	DefaultDelay         = 1500 * time.Millisecond
	MaxDelay             = time.Minute
	DefaultNewTitle      = "New Investigation"
	DefaultFallbackTitle = "Investigation"
	DefaultLogLevel      = "info"
	DefaultReply         = "I'm looking into the new information you've provided. Processing..."
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete tracechat configuration.
type Config struct {
	UI        UIConfig        `toml:"ui" json:"ui" yaml:"ui"`
	Responder ResponderConfig `toml:"responder" json:"responder" yaml:"responder"`
	Session   SessionConfig   `toml:"session" json:"session" yaml:"session"`
	Logging   LoggingConfig   `toml:"logging" json:"logging" yaml:"logging"`
}

// UIConfig contains terminal interface settings.
type UIConfig struct {
	// Theme is "light", "dark" or "auto" (follow the terminal background)
	Theme string `toml:"theme" json:"theme" yaml:"theme"`

	// SidebarCollapsed starts with the session list folded to an icon rail
	SidebarCollapsed bool `toml:"sidebar_collapsed" json:"sidebar_collapsed" yaml:"sidebar_collapsed"`

	// ShowTimestamps prints HH:MM under each message
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps" yaml:"show_timestamps"`

	// Markdown renders assistant replies with glamour
	Markdown bool `toml:"markdown" json:"markdown" yaml:"markdown"`
}

// ResponderConfig controls the simulated assistant.
type ResponderConfig struct {
	Delay Duration `toml:"delay" json:"delay" yaml:"delay"`
	Reply string   `toml:"reply" json:"reply" yaml:"reply"`
}

// SessionConfig controls session labels and demo data.
type SessionConfig struct {
	NewTitle      string `toml:"new_title" json:"new_title" yaml:"new_title"`
	FallbackTitle string `toml:"fallback_title" json:"fallback_title" yaml:"fallback_title"`
	SeedDemo      bool   `toml:"seed_demo" json:"seed_demo" yaml:"seed_demo"`
}

// LoggingConfig controls the log file. The terminal belongs to the UI, so
// logs always go to a file.
type LoggingConfig struct {
	Level string `toml:"level" json:"level" yaml:"level"`
	File  string `toml:"file" json:"file" yaml:"file"`
}

// Duration is a time.Duration written as a string ("1.5s") in every format.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String formats the duration.
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Bare integers are read
// as milliseconds.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*d = 0
		return nil
	}
	if isDigits(s) {
		s += "ms"
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(v)
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:          DefaultTheme,
			ShowTimestamps: true,
			Markdown:       true,
		},
		Responder: ResponderConfig{
			Delay: Duration(DefaultDelay),
			Reply: DefaultReply,
		},
		Session: SessionConfig{
			NewTitle:      DefaultNewTitle,
			FallbackTitle: DefaultFallbackTitle,
			SeedDemo:      true,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the tracechat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".tracechat"), nil
}

// ConfigPaths returns the candidate config files in load order.
func ConfigPaths() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.yaml"),
	}, nil
}

// DefaultLogFile returns ~/.tracechat/tracechat.log.
func DefaultLogFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tracechat.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the first config file that exists and returns it together with
// its path. With no file present it returns the defaults and an empty path.
// Environment overrides are applied last.
func Load() (*Config, string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return nil, "", err
	}
	for _, path := range paths {
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, "", nil
}

// LoadFromPath loads configuration from a specific file. The format is chosen
// by extension; anything that is not .json, .yaml or .yml is read as TOML.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data on top of the defaults, so omitted keys keep their
// default values.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", format, err)
	}
	fillDefaults(cfg)
	return cfg, nil
}

// fillDefaults restores values that a file may have blanked out.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.Responder.Reply == "" {
		cfg.Responder.Reply = defaults.Responder.Reply
	}
	if cfg.Session.NewTitle == "" {
		cfg.Session.NewTitle = defaults.Session.NewTitle
	}
	if cfg.Session.FallbackTitle == "" {
		cfg.Session.FallbackTitle = defaults.Session.FallbackTitle
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Encode serializes the configuration in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		buf.WriteString("# tracechat configuration file\n")
		buf.WriteString("# Generated by tracechat - edit with care\n\n")
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// Save writes the configuration to path, choosing the format by extension.
// Files are written atomically with 0600 permissions.
func Save(cfg *Config, path string) error {
	data, err := Encode(cfg, FormatOf(path))
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.UI.Theme {
	case "light", "dark", "auto":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: light, dark, auto", c.UI.Theme),
		})
	}

	if d := c.Responder.Delay.Std(); d < 0 || d > MaxDelay {
		errs = append(errs, ValidationError{
			Field:   "responder.delay",
			Message: fmt.Sprintf("delay %s out of range [0s, %s]", d, MaxDelay),
		})
	}

	if strings.TrimSpace(c.Session.NewTitle) == "" {
		errs = append(errs, ValidationError{Field: "session.new_title", Message: "must not be empty"})
	}
	if strings.TrimSpace(c.Session.FallbackTitle) == "" {
		errs = append(errs, ValidationError{Field: "session.fallback_title", Message: "must not be empty"})
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
//   - TRACECHAT_THEME: overrides ui.theme
//   - TRACECHAT_DELAY: overrides responder.delay ("2s", or milliseconds)
//   - TRACECHAT_LOG_LEVEL: overrides logging.level
//   - TRACECHAT_LOG_FILE: overrides logging.file
//
// Malformed values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("TRACECHAT_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if delay := os.Getenv("TRACECHAT_DELAY"); delay != "" {
		var d Duration
		if err := d.UnmarshalText([]byte(delay)); err == nil {
			c.Responder.Delay = d
		}
	}
	if level := os.Getenv("TRACECHAT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if file := os.Getenv("TRACECHAT_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}

// Clone creates a copy of the configuration. Config holds no reference
// types, so a value copy is deep.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as TOML for display.
func (c *Config) String() string {
	data, err := Encode(c, FormatTOML)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
