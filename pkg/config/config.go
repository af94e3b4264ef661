// Package config loads the CLI configuration: a small YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	// ServerURL is the base URL of the notes API.
	ServerURL string `yaml:"server_url"`

	// DataDir holds persisted session state.
	DataDir string `yaml:"data_dir"`
}

// Default returns the built-in configuration. The data dir falls back
// to a relative ".jot" when the home directory cannot be resolved.
func Default() Config {
	dataDir := ".jot"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".jot")
	}
	return Config{
		ServerURL: "http://localhost:5000",
		DataDir:   dataDir,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Default().DataDir, "config.yaml")
}

// Load reads the config file at path, layering it over the defaults and
// applying JOT_SERVER_URL / JOT_DATA_DIR overrides on top. A missing
// file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("JOT_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("JOT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	return cfg, nil
}
