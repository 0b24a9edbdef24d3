package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	configFilenames = []string{
		".findgroup.yaml",
		".findgroup.yml",
		".findgroup.toml",
	}
	xdgFilenames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
	}
)

// Find locates the config file. An explicit path must exist. Otherwise the
// directories from startDir up to the filesystem root are searched, then
// $XDG_CONFIG_HOME/findgroup (falling back to ~/.config/findgroup). It
// returns "" when there is no config file.
func Find(startDir, explicitPath, xdgHome, home string) (string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate, err := filepath.Abs(explicit)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", err
		}
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", candidate)
		}
		return candidate, nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" {
		homeDir := strings.TrimSpace(home)
		if homeDir == "" {
			if h, err := os.UserHomeDir(); err == nil {
				homeDir = h
			}
		}
		if homeDir != "" {
			xdgRoot = filepath.Join(homeDir, ".config")
		}
	}
	if xdgRoot != "" {
		for _, name := range xdgFilenames {
			candidate := filepath.Join(xdgRoot, "findgroup", name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
