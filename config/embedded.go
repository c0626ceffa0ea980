// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from the embedded flyin.json.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/flyin/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// embeddedDefaults returns the parsed embedded defaults, cached after the
// first call.
func embeddedDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		data, err := defaults.SystemConfig()
		if err != nil {
			embeddedErr = err
			return
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			embeddedErr = err
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}

// defaultSystemConfig returns a copy of the embedded defaults, or nil when
// they cannot be parsed.
func defaultSystemConfig() Config {
	cfg, err := embeddedDefaults()
	if err != nil || cfg == nil {
		return nil
	}
	return cloneConfig(cfg)
}

// cloneConfig copies cfg and each of its sections.
func cloneConfig(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for k, v := range cfg {
		if section := asSection(v); section != nil {
			out := make(Section, len(section))
			for sk, sv := range section {
				out[sk] = sv
			}
			clone[k] = out
			continue
		}
		clone[k] = v
	}
	return clone
}
