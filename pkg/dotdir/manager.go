// Package dotdir manages the per-user .moltbook/ directory.
//
// The directory holds the persisted configuration record (config.toml).
// There is exactly one such directory per user; concurrent CLI invocations
// share it without locking (last writer wins).
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// dirName is the name of the moltbook directory.
	dirName = ".moltbook"

	// EnvConfigDir overrides the default ~/.moltbook location.
	EnvConfigDir = "MOLTBOOK_CONFIG_DIR"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the absolute path to the .moltbook/ directory, creating it
// if it does not exist. Order of precedence:
//  1. Provided override (from the --config-dir flag)
//  2. The MOLTBOOK_CONFIG_DIR environment variable
//  3. Home ~/.moltbook/ dir
func (m *Manager) Target(overrideDir string) (string, error) {
	var dir string

	switch {
	case overrideDir != "":
		dir = overrideDir

	case os.Getenv(EnvConfigDir) != "":
		dir = os.Getenv(EnvConfigDir)

	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating moltbook directory %s: %w", dir, err)
	}

	return filepath.Abs(dir)
}
