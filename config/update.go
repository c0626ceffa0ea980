// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/update.go
// Summary: Persists section.key=value assignments into flyin.json.

package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Update applies assignments of the form "section.key=value" to the loaded
// configuration, saves it and reloads it. Values are decoded as JSON when
// possible (numbers, booleans) and kept as plain strings otherwise.
func Update(assignments []string) error {
	if len(assignments) == 0 {
		return nil
	}
	cfg := cloneConfig(System())
	if cfg == nil {
		cfg = make(Config)
	}
	for _, a := range assignments {
		section, key, value, err := parseAssignment(a)
		if err != nil {
			return err
		}
		sec := cfg.Section(section)
		if sec == nil {
			sec = make(Section)
			cfg[section] = sec
		}
		sec[key] = value
	}
	SetSystem(cfg)
	if err := SaveSystem(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return Reload()
}

func parseAssignment(a string) (section, key string, value interface{}, err error) {
	name, raw, ok := strings.Cut(a, "=")
	if !ok {
		return "", "", nil, fmt.Errorf("config: %q is not section.key=value", a)
	}
	section, key, ok = strings.Cut(strings.TrimSpace(name), ".")
	if !ok || section == "" || key == "" {
		return "", "", nil, fmt.Errorf("config: %q is not section.key=value", a)
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}
	return section, key, value, nil
}
