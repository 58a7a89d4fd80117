// Package memory persists self-play training records (state, policy
// target, color tuples) to a BadgerDB database between games, adapted
// from the teacher's user-preferences/stats storage layer to a new
// append-only, per-run record shape.
package memory

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "fourpchess"

// dataDir returns the platform-specific data directory for the
// application:
//   - macOS: ~/Library/Application Support/fourpchess/
//   - Linux: ~/.local/share/fourpchess/
//   - Windows: %APPDATA%/fourpchess/
func dataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// databaseDir returns the directory the Badger database lives in,
// creating it if necessary.
func databaseDir() (string, error) {
	base, err := dataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(base, "memory-db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
