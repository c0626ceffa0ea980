// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/flyin/main.go
// Summary: Terminal splash that flies in localized text and code samples.
// Usage: Run `flyin` from a directory holding i18n/ and code/; stop with Ctrl-C.
// `-set section.key=value` saves a setting to flyin.json first.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/framegrace/flyin/apps/splash"
	"github.com/framegrace/flyin/config"
	"github.com/framegrace/flyin/i18n"
	"github.com/framegrace/flyin/layout"
	"github.com/framegrace/flyin/samples"
	"github.com/framegrace/flyin/terminal"
)

// assignments collects repeated -set flags.
type assignments []string

func (a *assignments) String() string     { return strings.Join(*a, ",") }
func (a *assignments) Set(v string) error { *a = append(*a, v); return nil }

func main() {
	var sets assignments
	flag.Var(&sets, "set", "persist a config value before starting, e.g. -set samples.highlight=true (repeatable)")
	flag.Parse()

	if err := run(sets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sets []string) error {
	// stdout carries the animation, so logs only ever go to a file.
	log.SetOutput(io.Discard)
	defaultLog, _ := config.StatePath("", "flyin.log")
	logFile := openLog(defaultLog)

	if err := config.Update(sets); err != nil {
		closeLog(logFile)
		return err
	}

	settings, cfgErr := config.Load()
	if settings.LogPath != defaultLog {
		closeLog(logFile)
		logFile = openLog(settings.LogPath)
	}
	defer closeLog(logFile)
	if cfgErr != nil {
		log.Printf("Config: using defaults: %v", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locale := i18n.Detect()
	texts := i18n.NewCatalog(settings.I18nDir).Text(locale)
	log.Printf("Flyin: locale %s, %d bytes of text", locale, len(texts))

	var history samples.History = samples.NopHistory{}
	if settings.HistoryEnabled {
		h, err := samples.OpenHistory(settings.HistoryPath)
		if err != nil {
			log.Printf("Samples: history disabled: %v", err)
		} else {
			history = h
			defer h.Close()
		}
	}
	catalog := samples.NewCatalog(samples.Options{
		Dir:         settings.CodeDir,
		Marker:      settings.Marker,
		AvoidRecent: settings.AvoidRecent,
		History:     history,
	})
	log.Printf("Samples: %d files in %s", len(catalog.Files()), settings.CodeDir)

	if !terminal.IsTerminal(os.Stdout) {
		log.Printf("Flyin: stdout is not a terminal")
	}
	display, err := terminal.Open(settings.Backend, os.Stdout)
	if err != nil {
		return err
	}
	columns := settings.Columns
	if columns == 0 {
		columns = terminal.Columns(os.Stdout, layout.Columns)
	}

	return splash.New(display, texts, catalog, splash.OptionsFrom(settings, columns)).Run(ctx)
}

func openLog(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func closeLog(f *os.File) {
	if f != nil {
		f.Close()
	}
}
