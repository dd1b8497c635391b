// Package config provides configuration management for mdb.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/mdblock/pkg/md"
)

// Config holds the mdb configuration.
type Config struct {
	PreferredFormat string `yaml:"preferred_format,omitempty"`
	Theme           string `yaml:"theme,omitempty"`
	OutputFormat    string `yaml:"output_format,omitempty"`
}

// Validate checks that every set field holds a known value. Empty fields
// mean "use the default" and are valid.
func (c *Config) Validate() error {
	if c.PreferredFormat != "" && !md.ValidFormat(c.PreferredFormat) {
		return fmt.Errorf("preferred_format must be json or yaml, got %q", c.PreferredFormat)
	}
	if c.Theme != "" && !md.ThemeExists(c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("output_format must be table, json or plain, got %q", c.OutputFormat)
	}
	return nil
}

// ThemeOrDefault returns the configured theme, or md.DefaultTheme.
func (c *Config) ThemeOrDefault() string {
	if c.Theme == "" {
		return md.DefaultTheme
	}
	return c.Theme
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if f := os.Getenv("MDB_PREFERRED_FORMAT"); f != "" {
		c.PreferredFormat = f
	}
	if theme := os.Getenv("MDB_THEME"); theme != "" {
		c.Theme = theme
	}
	if out := os.Getenv("MDB_OUTPUT"); out != "" {
		c.OutputFormat = out
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdb", "config.yml")
	}

	// Fall back to ~/.config/mdb/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdb", "config.yml")
	}

	return filepath.Join(home, ".config", "mdb", "config.yml")
}

// PathOrDefault returns path, or DefaultConfigPath when path is empty.
func PathOrDefault(path string) string {
	if path == "" {
		return DefaultConfigPath()
	}
	return path
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
