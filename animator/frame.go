// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: animator/frame.go
// Summary: Pure per-frame composition of the fly-in animation.
// Usage: Compose(script, i, cfg) yields the rows for frame i and whether any
// glyph is still in flight.
// Notes: No state survives between frames; every row is rebuilt from the
// prepared glyphs and the frame index.

package animator

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/flyin/internal/effects"
	"github.com/framegrace/flyin/layout"
)

// Config holds the timing parameters of the animation.
type Config struct {
	Columns    int     // row width in cells
	CharDelay  float32 // stagger per resting column
	LineDelay  float32 // stagger per line
	FrameScale float32 // frames per time unit
	Curve      effects.Curve
}

// DefaultConfig returns the reference timing: 80 columns, 0.05 per column,
// 0.5 per line, 100 frames per unit and the cubic curve.
func DefaultConfig() Config {
	return Config{
		Columns:    layout.Columns,
		CharDelay:  0.05,
		LineDelay:  0.5,
		FrameScale: 100,
		Curve:      effects.CubicRemaining,
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Columns <= 0 {
		c.Columns = def.Columns
	}
	if c.FrameScale <= 0 {
		c.FrameScale = def.FrameScale
	}
	if c.Curve == nil {
		c.Curve = def.Curve
	}
	return c
}

// Script is a text prepared for animation: one glyph stream per line.
type Script [][]layout.Glyph

// Prepare lays out every line of text.
func Prepare(text string) Script {
	lines := layout.SplitLines(text)
	script := make(Script, len(lines))
	for l, line := range lines {
		script[l] = layout.Layout(line)
	}
	return script
}

// Cell is one display slot of a composed row.
type Cell struct {
	Ch rune
	Fg tcell.Color
}

var blank = Cell{Ch: ' ', Fg: tcell.ColorDefault}

// IsContinuation reports whether the cell is covered by a wide glyph to its left.
func (c Cell) IsContinuation() bool {
	return c.Ch == layout.Continuation
}

// Row is a fixed-width sequence of cells.
type Row []Cell

// String concatenates the row's cells, skipping continuation cells.
func (r Row) String() string {
	var sb strings.Builder
	sb.Grow(len(r))
	for _, c := range r {
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

// Frame is the composed screen body for one frame index.
type Frame struct {
	Rows    []Row
	Pending bool
}

// Lines returns the rows as printable strings.
func (f Frame) Lines() []string {
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row.String()
	}
	return out
}

// LocalTime returns the progress of the glyph resting at column j on line l
// at frame i. Negative means not started, above 1 means settled.
func (c Config) LocalTime(i uint64, j, l int) float32 {
	c = c.normalized()
	// Explicit conversions keep each product rounded to float32 on every
	// architecture.
	now := float32(float32(i) / c.FrameScale)
	col := float32(float32(j) * c.CharDelay)
	line := float32(float32(l) * c.LineDelay)
	return now - col - line
}

// Compose builds frame i of script.
func Compose(script Script, i uint64, cfg Config) Frame {
	cfg = cfg.normalized()
	frame := Frame{Rows: make([]Row, len(script))}
	for l, glyphs := range script {
		row, pending := composeRow(glyphs, i, l, cfg)
		frame.Rows[l] = row
		if pending {
			frame.Pending = true
		}
	}
	return frame
}

func composeRow(glyphs []layout.Glyph, i uint64, l int, cfg Config) (Row, bool) {
	columns := cfg.Columns
	row := make(Row, columns)
	for k := range row {
		row[k] = blank
	}
	pending := false
	for j, g := range glyphs {
		if !drawable(g) {
			continue
		}
		t := cfg.LocalTime(i, j, l)
		if t > 1.0 {
			place(row, j, g)
			continue
		}
		pending = true
		if t < 0.0 {
			continue
		}
		place(row, j+effects.Offset(cfg.Curve, t, columns), g)
	}
	return row, pending
}

// drawable reports whether g is ever drawn. Continuation entries and NUL
// runes share the same rune and neither takes part in the animation.
func drawable(g layout.Glyph) bool {
	return g.Ch != layout.Continuation
}

// place writes g at column x plus its continuation cells. A glyph that would
// cross the right edge is dropped. Later glyphs overwrite earlier ones.
func place(row Row, x int, g layout.Glyph) {
	w := g.Width
	if w < 1 {
		w = 1
	}
	if x < 0 || x+w-1 >= len(row) {
		return
	}
	row[x] = Cell{Ch: g.Ch, Fg: g.Fg}
	for k := 1; k < w; k++ {
		row[x+k] = Cell{Ch: layout.Continuation, Fg: tcell.ColorDefault}
	}
}

// Pending reports whether any glyph of script is unsettled at frame i.
func Pending(script Script, i uint64, cfg Config) bool {
	cfg = cfg.normalized()
	for l, glyphs := range script {
		for j, g := range glyphs {
			if !drawable(g) {
				continue
			}
			if cfg.LocalTime(i, j, l) <= 1.0 {
				return true
			}
		}
	}
	return false
}

// Settle returns the first frame index at which no glyph of script is
// pending. Local time grows with i, so every later frame is settled too.
func Settle(script Script, cfg Config) uint64 {
	cfg = cfg.normalized()
	var span float32
	for l, glyphs := range script {
		for j, g := range glyphs {
			if !drawable(g) {
				continue
			}
			need := float32(j)*cfg.CharDelay + float32(l)*cfg.LineDelay
			if need > span {
				span = need
			}
		}
	}
	guess := int64((1.0+span)*cfg.FrameScale) - 2
	if guess < 0 {
		guess = 0
	}
	i := uint64(guess)
	for i > 0 && !Pending(script, i-1, cfg) {
		i--
	}
	for Pending(script, i, cfg) {
		i++
	}
	return i
}
