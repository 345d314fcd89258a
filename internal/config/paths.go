package config

import (
	"os"
	"path/filepath"
)

// DialPath returns the root directory for dial data.
// It uses $DIAL_PATH if set, otherwise defaults to ~/.dial.
func DialPath() string {
	if v := os.Getenv("DIAL_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dial")
	}
	return filepath.Join(home, ".dial")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(DialPath(), "config.jsonc")
}

// LogDir is the default directory for daily log files.
func LogDir() string {
	return filepath.Join(DialPath(), "logs")
}
