// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors.
var (
	ErrInvalidQuitKey = errors.New("quit_key must be exactly one character")
	ErrEmptyStartMsg  = errors.New("start_msg must be set")
)

// Config holds the application configuration.
type Config struct {
	Session SessionConfig `toml:"session"`
	UI      UIConfig      `toml:"ui"`
}

// SessionConfig holds the settings for a single focus session.
type SessionConfig struct {
	StartMsg string `toml:"start_msg"` // printed when the session starts
	QuitKey  string `toml:"quit_key"`  // single character, e.g. "q"
}

// UIConfig holds output settings.
type UIConfig struct {
	Color bool `toml:"color"`
}

// QuitRune returns the quit key as a rune.
func (s SessionConfig) QuitRune() rune {
	r, _ := utf8.DecodeRuneInString(s.QuitKey)
	return r
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			StartMsg: "🍅 focusing...",
			QuitKey:  "q",
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "focus", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOCUS_START_MSG"); v != "" {
		cfg.Session.StartMsg = v
	}
	if v := os.Getenv("FOCUS_QUIT_KEY"); v != "" {
		cfg.Session.QuitKey = v
	}
	if v := os.Getenv("FOCUS_NO_COLOR"); v != "" {
		if noColor, err := strconv.ParseBool(v); err == nil {
			cfg.UI.Color = !noColor
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return c.Session.Validate()
}

// Validate checks the session settings.
func (s SessionConfig) Validate() error {
	if s.StartMsg == "" {
		return ErrEmptyStartMsg
	}
	if utf8.RuneCountInString(s.QuitKey) != 1 {
		return fmt.Errorf("%w, got %q", ErrInvalidQuitKey, s.QuitKey)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
