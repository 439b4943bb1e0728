// ABOUTME: Nosh configuration with JSON file plus environment overrides.
// ABOUTME: Holds data dir, AI endpoint settings, and the chart metric selection.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/harperreed/nosh/internal/tracker"
)

// Config stores nosh tool configuration. File values can be overridden by
// environment variables; the API key is env-only and never written to disk.
type Config struct {
	// DataDir is the root directory for the journal store.
	// Supports ~ expansion. Defaults to ~/.local/share/nosh.
	DataDir string `json:"data_dir,omitempty" env:"NOSH_DATA_DIR"`

	// AIBaseURL is the OpenAI-compatible API root for nutrient estimation.
	AIBaseURL string `json:"ai_base_url,omitempty" env:"NOSH_AI_BASE_URL"`

	// AIModel is the model used for nutrient estimation.
	AIModel string `json:"ai_model,omitempty" env:"NOSH_AI_MODEL"`

	// AIAPIKey authenticates estimation calls. Env-only.
	AIAPIKey string `json:"-" env:"NOSH_AI_API_KEY"`

	// Metrics is the persisted chart metric selection.
	Metrics []string `json:"metrics,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the journal store at the configured data directory.
func (c *Config) OpenStore() (*storage.Store, error) {
	return storage.Open(c.GetDataDir())
}

// Selection returns the persisted metric selection, falling back to the
// default when unset. Unknown keys in the file are dropped; a selection that
// ends up outside the allowed bounds also falls back to the default.
func (c *Config) Selection() tracker.Selection {
	var sel tracker.Selection
	for _, s := range c.Metrics {
		if models.IsValidMetricKey(s) {
			sel = append(sel, models.MetricKey(s))
		}
	}
	if len(sel) < tracker.MinSelected || len(sel) > tracker.MaxSelected {
		return tracker.DefaultSelection()
	}
	return sel
}

// SetSelection records the metric selection for persistence.
func (c *Config) SetSelection(sel tracker.Selection) {
	c.Metrics = make([]string, 0, len(sel))
	for _, k := range sel {
		c.Metrics = append(c.Metrics, string(k))
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nosh", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk. The API key is excluded by its json tag.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
