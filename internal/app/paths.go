package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName   = "fittracker"
	dataFileName = "fittracker.db"
)

// ConfigDir returns the per-user directory holding the app's config and
// data files.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultDataPath returns the default on-device database location.
func DefaultDataPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dataFileName), nil
}

// EnsureDataDir creates the parent directory of the data file.
func EnsureDataDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
