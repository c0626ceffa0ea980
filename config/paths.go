// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for flyin configuration and state files.

package config

import (
	"os"
	"path/filepath"
)

// Dir returns the flyin configuration directory.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "flyin"), nil
}

func systemConfigPath() (string, error) {
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// StatePath resolves name inside the configuration directory unless
// configured is already set.
func StatePath(configured, name string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	root, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}
