// SPDX-License-Identifier: Apache-2.0

// Package config handles application configuration: reading and writing
// the YAML config file and layering environment variable overrides for
// the API credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment overrides for credentials, so the token never has to live
// on disk if the user prefers.
const (
	EnvHost  = "TRELLO_API_HOST"
	EnvKey   = "TRELLO_API_KEY"
	EnvToken = "TRELLO_API_TOKEN"
)

// Config represents the top-level application configuration.
type Config struct {
	// Host overrides the Trello API base URL (mostly for testing)
	Host string `yaml:"host,omitempty"`

	// Key is the Trello API key
	Key string `yaml:"key"`

	// Token is the Trello API token paired with the key
	Token string `yaml:"token"`

	// DefaultBoard is a board pattern used when a command is not given one
	DefaultBoard string `yaml:"default_board,omitempty"`

	// CaseSensitive disables case folding during pattern matching
	CaseSensitive bool `yaml:"case_sensitive,omitempty"`

	// Wildcard overrides the '*' wildcard rune in patterns
	Wildcard string `yaml:"wildcard,omitempty"`

	// MaxRetries bounds conflicting write attempts during card updates
	MaxRetries int `yaml:"max_retries,omitempty"`

	// Editor overrides $EDITOR for card editing
	Editor string `yaml:"editor,omitempty"`
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "trel", "config.yaml"), nil
}

// LoadConfig reads the config file and applies environment overrides.
// A missing file is not an error; overrides still apply to the zero
// config.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if host := os.Getenv(EnvHost); host != "" {
		cfg.Host = host
	}
	if key := os.Getenv(EnvKey); key != "" {
		cfg.Key = key
	}
	if token := os.Getenv(EnvToken); token != "" {
		cfg.Token = token
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// The token is a credential; keep the file user-readable only.
	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// EditorCommand picks the editor used for card buffers: config override
// first, then $EDITOR, then vi.
func (c Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// WildcardRune returns the configured wildcard as a rune, defaulting to '*'.
func (c Config) WildcardRune() rune {
	for _, r := range c.Wildcard {
		return r
	}
	return '*'
}
