// Package project provides project discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirName is the name of the testgate configuration directory.
const ConfigDirName = ".testgate"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.yaml"

// ErrNoProjectRoot is returned when .testgate/config.yaml is not found.
var ErrNoProjectRoot = errors.New(".testgate/config.yaml not found in the current directory or any parent")

// FindRoot walks up from the current working directory until it finds .testgate/config.yaml.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds .testgate/config.yaml.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
