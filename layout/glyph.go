// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/glyph.go
// Summary: Converts a line of text into a position-indexed glyph stream.
// Usage: The index of each entry is the glyph's resting column.
// Notes: Tabs take a fixed 8-cell stop, wide runes reserve one continuation cell.

package layout

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	// Columns is the fixed row width used by the renderer.
	Columns = 80

	// TabWidth is the number of cells a tab always consumes.
	TabWidth = 8

	// Continuation marks a cell occupied by the previous wide glyph.
	Continuation rune = 0
)

// Glyph is one input rune annotated with its display width.
// Continuation entries have Width 0 and Ch == Continuation.
type Glyph struct {
	Width int
	Ch    rune
	Fg    tcell.Color
}

// IsContinuation reports whether g only reserves space for a wide glyph.
func (g Glyph) IsContinuation() bool {
	return g.Width == 0 && g.Ch == Continuation
}

// widths ignores the locale so ambiguous-width runes stay narrow.
var widths = &runewidth.Condition{EastAsianWidth: false}

// Width returns the number of cells r occupies when laid out: 8 for a tab,
// 2 for East Asian wide runes, 1 for everything else (including runes with
// no defined width).
func Width(r rune) int {
	if r == '\t' {
		return TabWidth
	}
	if widths.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// Layout converts a line into glyphs with the default foreground colour.
func Layout(line string) []Glyph {
	out := make([]Glyph, 0, len(line))
	for _, r := range line {
		out = appendGlyph(out, r, tcell.ColorDefault)
	}
	return out
}

// LayoutStyled is Layout with a colour per rune. Missing colours fall back to
// the default foreground.
func LayoutStyled(runes []rune, colors []tcell.Color) []Glyph {
	out := make([]Glyph, 0, len(runes))
	for i, r := range runes {
		fg := tcell.ColorDefault
		if i < len(colors) {
			fg = colors[i]
		}
		out = appendGlyph(out, r, fg)
	}
	return out
}

func appendGlyph(out []Glyph, r rune, fg tcell.Color) []Glyph {
	w := Width(r)
	out = append(out, Glyph{Width: w, Ch: r, Fg: fg})
	for k := 1; k < w; k++ {
		out = append(out, Glyph{Width: 0, Ch: Continuation})
	}
	return out
}

// SplitLines splits text the way a line iterator does: lines end at '\n',
// one trailing '\r' is dropped, and a final newline does not start an
// extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// FirstLine returns the first line of text, or "" when text is empty.
func FirstLine(text string) string {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
