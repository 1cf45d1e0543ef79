// Package config handles configuration for the horizon CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edalrymple/horizon/internal/models"
)

// EnvAPIKey overrides the configured API key when set.
const EnvAPIKey = "NASA_API_KEY"

// Config represents the user configuration.
type Config struct {
	// APIKey is the NASA API key injected into every request. Defaults to
	// the shared public demo key.
	APIKey string `json:"api_key"`
	// DownloadDir is where the images command saves files. Empty means the
	// current working directory.
	DownloadDir string `json:"download_dir,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		APIKey: models.DemoKey,
	}
}

// Dir returns the configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".horizon"), nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration. A missing file yields the defaults. The
// NASA_API_KEY environment variable overrides the file's key either way.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
		if cfg.APIKey == "" {
			cfg.APIKey = models.DemoKey
		}
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}

// Save writes the configuration, creating the config directory if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
