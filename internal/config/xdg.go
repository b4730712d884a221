// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "chatlens", "config.toml")
}

// DefaultStopwordsPath returns the default stop-word list path. The embedded
// list is used when no file exists there.
func DefaultStopwordsPath() string {
	return filepath.Join(XDGConfigHome(), "chatlens", "stopwords.txt")
}
