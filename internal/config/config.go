// Package config loads the dial configuration: a JSONC file under DialPath,
// overridden by DIAL_* environment variables and finally by CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Session SessionConfig `json:"session"`
	Log     LogConfig     `json:"log"`
	TUI     TUIConfig     `json:"tui"`
}

type ServerConfig struct {
	BaseURL string   `json:"base_url"`
	Timeout Duration `json:"timeout"`
}

type SessionConfig struct {
	Token string `json:"token,omitempty"`
}

type LogConfig struct {
	Dir   string `json:"dir"`
	Level string `json:"level"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// Theme is "light", "dark" or "auto".
	Theme        string   `json:"theme,omitempty"`
	TickInterval Duration `json:"tick_interval"`
}

// Duration is a time.Duration written as a Go duration string ("10s").
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"10s\": %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

const (
	DefaultBaseURL      = "http://localhost:8081"
	DefaultTimeout      = 10 * time.Second
	DefaultLogLevel     = "info"
	DefaultTickInterval = time.Second
)

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Server.BaseURL) == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}
	if cfg.Server.Timeout <= 0 {
		cfg.Server.Timeout = Duration(DefaultTimeout)
	}
	if strings.TrimSpace(cfg.Log.Dir) == "" {
		cfg.Log.Dir = LogDir()
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.TUI.TickInterval <= 0 {
		cfg.TUI.TickInterval = Duration(DefaultTickInterval)
	}
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("server.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server.base_url: expected http(s) URL, got %q", c.Server.BaseURL)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q (want debug|info|warn|error)", c.Log.Level)
	}
	switch strings.ToLower(c.TUI.Glyphs) {
	case "", "unicode", "ascii":
	default:
		return fmt.Errorf("tui.glyphs: unknown glyph set %q (want unicode|ascii)", c.TUI.Glyphs)
	}
	switch strings.ToLower(c.TUI.Theme) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("tui.theme: unknown theme %q (want auto|light|dark)", c.TUI.Theme)
	}
	return nil
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.Session.Token != "" {
		c.Session.Token = "********"
	}
	return c
}
