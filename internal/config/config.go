// Package config handles the CEO configuration file at ~/.ceo/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat CEO configuration.
type Config struct {
	Version string `json:"version"`

	// External accountability contact, dialed during circuit breaker
	// activation. Optional until the first emergency.
	ExternalContactName  string `json:"external_contact_name,omitempty"`
	ExternalContactPhone string `json:"external_contact_phone,omitempty"`

	// DefaultTargetTime is the suggested ship-by time for daily missions (HH:MM).
	DefaultTargetTime string `json:"default_target_time,omitempty"`
}

// ConfigDir returns the CEO dot directory, honoring CEO_HOME for tests.
func ConfigDir() (string, error) {
	if dir := os.Getenv("CEO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ceo"), nil
}

// LoadConfig reads config.json from the CEO dot directory.
// Returns an empty config when the file does not exist yet.
func LoadConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if os.IsNotExist(err) {
		return &Config{Version: "1"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the CEO dot directory.
func SaveConfig(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
