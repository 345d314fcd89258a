package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tailscale/hujson"
)

// Load reads a JSONC config file, applies defaults and then DIAL_* env
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	applyDefaults(cfg)
	ApplyEnv(cfg)
	return cfg, nil
}

// Parse decodes JSONC (comments and trailing commas allowed) into cfg.
func Parse(data []byte, cfg *Config) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := json.Unmarshal(std, cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg from the environment.
func ApplyEnv(cfg *Config) {
	if v := env("DIAL_SERVER"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := env("DIAL_SESSION"); v != "" {
		cfg.Session.Token = v
	}
	if v := env("DIAL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := env("DIAL_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := env("DIAL_TUI_GLYPHS"); v != "" {
		cfg.TUI.Glyphs = v
	}
	if v := env("DIAL_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}
}

func env(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}
