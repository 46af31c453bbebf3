package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/testgate/internal/config"
)

// Project represents a loaded testgate project.
type Project struct {
	Root       string
	ConfigPath string // Empty when running on defaults
	Config     *config.Config
	Warnings   []string
}

// LoadProject finds and loads a project from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	return load(root, filepath.Join(root, ConfigDirName, ConfigFileName))
}

// LoadConfigFile loads a project from an explicit config file path.
// The root is the directory containing .testgate when the file lives there,
// otherwise the directory of the file itself.
func LoadConfigFile(path string) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	root := dir
	if filepath.Base(dir) == ConfigDirName {
		root = filepath.Dir(dir)
	}
	return load(root, abs)
}

// LoadOrDefault loads the project containing dir, falling back to the
// default configuration rooted at dir when no config file exists.
func LoadOrDefault(dir string) (*Project, error) {
	root, err := FindRootFrom(dir)
	if errors.Is(err, ErrNoProjectRoot) {
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return nil, absErr
		}
		return &Project{Root: abs, Config: config.Default()}, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

func load(root, configPath string) (*Project, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	cfg, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &Project{
		Root:       root,
		ConfigPath: configPath,
		Config:     cfg,
		Warnings:   warnings,
	}, nil
}

// Resolve returns path relative to the project root unless it is absolute.
func (p *Project) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}
