// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: samples/catalog.go
// Summary: Code sample discovery, random selection and marker substitution.
// Usage: Catalog.Next picks a file, reads it and substitutes the marker.
// Notes: An unreadable sample yields empty text; an empty catalog is an error.

package samples

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultMarker is replaced with the first localized line in every sample.
const DefaultMarker = "$$$"

// ErrNoSamples is returned when the code directory contains no files.
var ErrNoSamples = errors.New("no code samples found")

// Sample is a code file ready to be animated.
type Sample struct {
	Path     string
	Text     string
	Language string
}

// List returns the regular files directly inside dir, sorted by name. A
// missing or unreadable directory yields an empty list.
func List(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Samples: cannot read %s: %v", dir, err)
		return nil
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// Load reads a sample, returning "" when it cannot be read.
func Load(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Samples: cannot read %s: %v", path, err)
		return ""
	}
	return string(data)
}

// Substitute replaces every occurrence of marker in code with replacement.
func Substitute(code, marker, replacement string) string {
	if marker == "" {
		return code
	}
	return strings.ReplaceAll(code, marker, replacement)
}

// Options configures a Catalog.
type Options struct {
	Dir         string
	Marker      string
	AvoidRecent int
	History     History
	Rand        *rand.Rand
}

// Catalog selects samples from a directory.
type Catalog struct {
	dir         string
	marker      string
	avoidRecent int
	history     History
	rng         *rand.Rand
	files       []string
}

// NewCatalog scans opts.Dir once and returns a catalog over its files.
func NewCatalog(opts Options) *Catalog {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}
	if opts.History == nil {
		opts.History = NopHistory{}
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Catalog{
		dir:         opts.Dir,
		marker:      opts.Marker,
		avoidRecent: opts.AvoidRecent,
		history:     opts.History,
		rng:         opts.Rand,
		files:       List(opts.Dir),
	}
}

// Files returns the sample paths known to the catalog.
func (c *Catalog) Files() []string {
	return append([]string(nil), c.files...)
}

// Pick chooses a sample path at random, skipping the most recently shown
// files while other candidates remain.
func (c *Catalog) Pick() (string, error) {
	if len(c.files) == 0 {
		return "", fmt.Errorf("%s: %w", c.dir, ErrNoSamples)
	}
	candidates := c.files
	if n := min(c.avoidRecent, len(c.files)-1); n > 0 {
		recent, err := c.history.Recent(n)
		if err != nil {
			log.Printf("Samples: history lookup failed: %v", err)
		}
		if filtered := without(c.files, recent); len(filtered) > 0 {
			candidates = filtered
		}
	}
	return candidates[c.rng.IntN(len(candidates))], nil
}

// Next picks, loads and prepares a sample, replacing the marker with
// firstLine.
func (c *Catalog) Next(firstLine string) (Sample, error) {
	path, err := c.Pick()
	if err != nil {
		return Sample{}, err
	}
	raw := Load(path)
	return Sample{
		Path:     path,
		Text:     Substitute(raw, c.marker, firstLine),
		Language: Detect(path, raw),
	}, nil
}

// Shown records that s has been displayed.
func (c *Catalog) Shown(s Sample, frames uint64) {
	err := c.history.Record(Entry{
		Path:     s.Path,
		Language: s.Language,
		ShownAt:  time.Now(),
		Frames:   frames,
	})
	if err != nil {
		log.Printf("Samples: failed to record %s: %v", s.Path, err)
		return
	}
	if n, err := c.history.Count(s.Path); err == nil && n > 0 {
		log.Printf("Samples: %s shown %d times", s.Path, n)
	}
}

func without(files, skip []string) []string {
	if len(skip) == 0 {
		return files
	}
	drop := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		drop[s] = struct{}{}
	}
	out := make([]string, 0, len(files))
	for _, f := range files {
		if _, ok := drop[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}
