// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetFloat("animation", "char_delay", 0) != 0.05 {
		t.Fatalf("expected char_delay default")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if disk.Section("samples") == nil {
		t.Fatalf("expected samples section to be present")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{
		"terminal": map[string]interface{}{"backend": "tcell"},
	})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}
	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	cfg := System()
	if got := cfg.GetString("terminal", "backend", ""); got != "tcell" {
		t.Fatalf("expected tcell backend, got %q", got)
	}
	if got := cfg.GetInt("animation", "columns", 0); got != 80 {
		t.Fatalf("expected defaults merged on reload, got columns=%d", got)
	}
}

func TestBrokenConfigFallsBackInMemory(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "flyin", systemConfigName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if Err() == nil {
		t.Fatalf("expected load error for broken config")
	}
	if got := System().GetString("samples", "marker", ""); got != "$$$" {
		t.Fatalf("expected default marker, got %q", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Fatalf("broken config should not be overwritten")
	}
}

func TestSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := Config{
		"animation": map[string]interface{}{
			"char_delay":        0.1,
			"columns":           float64(0),
			"frame_interval_ms": "20",
		},
		"samples": map[string]interface{}{
			"highlight": true,
			"pause_ms":  250,
		},
		"history": map[string]interface{}{
			"db_path": "/tmp/custom.db",
		},
	}
	applySystemDefaults(cfg)
	s := cfg.Settings()

	if s.CharDelay != 0.1 || s.LineDelay != 0.5 {
		t.Fatalf("unexpected delays %v %v", s.CharDelay, s.LineDelay)
	}
	if s.Columns != 0 {
		t.Fatalf("expected automatic columns, got %d", s.Columns)
	}
	if s.FrameInterval != 20*time.Millisecond || s.Pause != 250*time.Millisecond {
		t.Fatalf("unexpected durations %v %v", s.FrameInterval, s.Pause)
	}
	if !s.Highlight || s.Backend != "ansi" || s.Marker != "$$$" {
		t.Fatalf("unexpected samples settings %+v", s)
	}
	if s.HistoryPath != "/tmp/custom.db" {
		t.Fatalf("expected configured history path, got %q", s.HistoryPath)
	}
	if filepath.Base(s.LogPath) != "flyin.log" {
		t.Fatalf("expected default log path, got %q", s.LogPath)
	}
}

func TestGetBoolAndStringFallbacks(t *testing.T) {
	cfg := Config{"s": Section{"b": "yes?", "n": 3}}
	if !cfg.GetBool("s", "b", true) {
		t.Fatalf("unparseable bool should return default")
	}
	if cfg.GetString("s", "n", "d") != "d" {
		t.Fatalf("non-string should return default")
	}
	if cfg.GetInt("missing", "x", 7) != 7 {
		t.Fatalf("missing section should return default")
	}
}

func TestUpdatePersistsAssignments(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	err := Update([]string{"samples.highlight=true", "animation.columns=120", "terminal.backend=tcell"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	s := System().Settings()
	if !s.Highlight || s.Columns != 120 || s.Backend != "tcell" {
		t.Fatalf("unexpected settings after update %+v", s)
	}

	resetStore()
	if got := System().GetInt("animation", "columns", 0); got != 120 {
		t.Fatalf("expected update on disk, got columns=%d", got)
	}
	if got := System().GetString("samples", "marker", ""); got != "$$$" {
		t.Fatalf("untouched keys should survive, got marker %q", got)
	}
}

func TestUpdateRejectsMalformedAssignment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	for _, a := range []string{"highlight=true", "samples.highlight", ".x=1"} {
		if err := Update([]string{a}); err == nil {
			t.Fatalf("expected error for %q", a)
		}
	}
}
