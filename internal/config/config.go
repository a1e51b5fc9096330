// Package config loads qajudge configuration from .qajudge/config.json in
// the workspace, with environment variables taking precedence. A .env file
// in the workspace is loaded first so either source works.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultServerURL matches the local development backend.
	DefaultServerURL = "http://localhost:5000/api"

	// DefaultTimeoutSeconds bounds a single evaluation round trip. The
	// backend runs an LLM judge plus NLP metrics, so this is generous.
	DefaultTimeoutSeconds = 120
)

// Config holds all qajudge settings.
type Config struct {
	// ServerURL is the base URL of the evaluation backend, without the
	// trailing /ask.
	ServerURL string `json:"server_url,omitempty"`

	// TimeoutSeconds is the HTTP transport timeout for one submission.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// Theme selects the TUI color scheme ("light", "dark", or "" for
	// terminal auto-detection).
	Theme string `json:"theme,omitempty"`

	// Debug enables debug-level file logging for the TUI session.
	Debug bool `json:"debug,omitempty"`
}

// Path returns the config file location inside a workspace.
func Path(workspace string) string {
	return filepath.Join(workspace, ".qajudge", "config.json")
}

// Load reads the workspace config, fills in defaults, and applies env
// overrides. A missing config file is not an error; defaults apply.
func Load(workspace string) (*Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(workspace, ".env"))

	cfg := &Config{}
	data, err := os.ReadFile(Path(workspace))
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config back to the workspace, creating .qajudge/ as
// needed.
func (c *Config) Save(workspace string) error {
	path := Path(workspace)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Timeout returns the transport timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("QAJUDGE_SERVER"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("QAJUDGE_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("QAJUDGE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("QAJUDGE_DEBUG"); v == "1" || v == "true" {
		c.Debug = true
	}
}

func (c *Config) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
