// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into every loaded configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("animation", Section{
		"char_delay":        0.05,
		"line_delay":        0.5,
		"frame_scale":       100,
		"columns":           80,
		"easing":            "cubic",
		"frame_interval_ms": 10,
	})
	cfg.RegisterDefaults("paths", Section{
		"i18n_dir": "i18n",
		"code_dir": "code",
	})
	cfg.RegisterDefaults("samples", Section{
		"marker":       "$$$",
		"pause_ms":     1000,
		"highlight":    false,
		"style":        "catppuccin-mocha",
		"avoid_recent": 1,
	})
	cfg.RegisterDefaults("terminal", Section{
		"backend": "ansi",
	})
	cfg.RegisterDefaults("history", Section{
		"enabled": true,
		"db_path": "",
	})
	cfg.RegisterDefaults("log", Section{
		"path": "",
	})
}
