package config

import (
	"os"
	"path/filepath"
)

// DataPath returns the state directory from the COMPASS_DATA env var,
// falling back to the XDG data home.
func DataPath() string {
	if env := os.Getenv("COMPASS_DATA"); env != "" {
		return env
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "compass")
	}
	return "~/.local/share/compass"
}
