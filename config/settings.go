// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed view of the configuration consumed by the splash driver.

package config

import "time"

// Settings is the resolved configuration of one run.
type Settings struct {
	CharDelay     float64
	LineDelay     float64
	FrameScale    float64
	Columns       int // 0 means detect from the terminal
	Easing        string
	FrameInterval time.Duration

	I18nDir string
	CodeDir string

	Marker      string
	Pause       time.Duration
	Highlight   bool
	Style       string
	AvoidRecent int

	Backend string

	HistoryEnabled bool
	HistoryPath    string

	LogPath string
}

// Settings resolves the typed settings. Empty state paths are placed in the
// configuration directory.
func (c Config) Settings() Settings {
	s := Settings{
		CharDelay:     c.GetFloat("animation", "char_delay", 0.05),
		LineDelay:     c.GetFloat("animation", "line_delay", 0.5),
		FrameScale:    c.GetFloat("animation", "frame_scale", 100),
		Columns:       c.GetInt("animation", "columns", 80),
		Easing:        c.GetString("animation", "easing", "cubic"),
		FrameInterval: time.Duration(c.GetInt("animation", "frame_interval_ms", 10)) * time.Millisecond,

		I18nDir: c.GetString("paths", "i18n_dir", "i18n"),
		CodeDir: c.GetString("paths", "code_dir", "code"),

		Marker:      c.GetString("samples", "marker", "$$$"),
		Pause:       time.Duration(c.GetInt("samples", "pause_ms", 1000)) * time.Millisecond,
		Highlight:   c.GetBool("samples", "highlight", false),
		Style:       c.GetString("samples", "style", "catppuccin-mocha"),
		AvoidRecent: c.GetInt("samples", "avoid_recent", 1),

		Backend: c.GetString("terminal", "backend", "ansi"),

		HistoryEnabled: c.GetBool("history", "enabled", true),
		LogPath:        c.GetString("log", "path", ""),
	}
	s.HistoryPath, _ = StatePath(c.GetString("history", "db_path", ""), "history.db")
	if s.LogPath == "" {
		s.LogPath, _ = StatePath("", "flyin.log")
	}
	if s.Columns < 0 {
		s.Columns = 80
	}
	return s
}

// Load returns the settings from the configuration store together with the
// most recent load error.
func Load() (Settings, error) {
	return System().Settings(), Err()
}
