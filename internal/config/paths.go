package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoConfigFile is returned by DetectConfigFile when no candidate exists.
var ErrNoConfigFile = errors.New("no stepview config file found")

// configNames are searched in order in each directory.
var configNames = []string{
	"stepview.yaml",
	"stepview.yml",
	"stepview.json",
	"stepview.toml",
	".stepview.yaml",
}

// DetectConfigFile walks up from the working directory looking for a
// stepview config file.
func DetectConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return FindConfigFile(cwd)
}

// FindConfigFile walks up from dir to the filesystem root and returns the
// first config file found.
func FindConfigFile(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfigFile
		}
		dir = parent
	}
}
