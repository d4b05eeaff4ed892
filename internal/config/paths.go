package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// EnvDir overrides the config directory, mostly for tests and scripts.
const EnvDir = "BFCTL_CONFIG_DIR"

// Dir returns the bfctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/bfctl; on macOS
// to ~/Library/Application Support/bfctl; and on Windows to %AppData%/bfctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	if d := strings.TrimSpace(os.Getenv(EnvDir)); d != "" {
		return d, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "bfctl"), nil
}

// Path returns the location of config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
