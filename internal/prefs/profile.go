// Package prefs moves the visitor profile in and out of a portable JSON file,
// so a profile can follow a visitor between machines.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/gitdeck/internal/service"
)

const profileFile = "profile.json"

// DefaultPath is the export location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gitdeck", profileFile), nil
}

// Export writes p to path, replacing any existing file atomically.
func Export(path string, p *service.Profile) error {
	if p == nil {
		return fmt.Errorf("export: no profile saved")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Import reads a profile written by Export. A missing file yields nil, nil.
func Import(path string) (*service.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var p service.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}
