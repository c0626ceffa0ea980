// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: samples/highlight.go
// Summary: Colours sample glyphs from Chroma tokens.
// Notes: Tokens drawn in the style's base text colour keep the terminal
// default so uncoloured text stays plain.

package samples

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/flyin/animator"
	"github.com/framegrace/flyin/layout"
)

// DefaultStyle is the Chroma style used when none is configured.
const DefaultStyle = "catppuccin-mocha"

// Highlight prepares text for animation with a foreground colour per rune.
// It falls back to plain layout when tokenising fails.
func Highlight(text, language, styleName string) animator.Script {
	lines := layout.SplitLines(text)
	if len(lines) == 0 {
		return animator.Script{}
	}
	colours, ok := tokenColours(text, language, styleName)
	if !ok {
		return animator.Prepare(text)
	}

	script := make(animator.Script, len(lines))
	// Runes of text not covered by SplitLines ('\n' and a '\r' before it)
	// are skipped by walking the original text alongside the lines.
	runes := []rune(text)
	pos := 0
	for l, line := range lines {
		lineRunes := []rune(line)
		script[l] = layout.LayoutStyled(lineRunes, colours[pos:pos+len(lineRunes)])
		pos += len(lineRunes)
		if pos < len(runes) && runes[pos] == '\r' {
			pos++
		}
		if pos < len(runes) && runes[pos] == '\n' {
			pos++
		}
	}
	return script
}

// tokenColours returns one colour per rune of text.
func tokenColours(text, language, styleName string) ([]tcell.Color, bool) {
	lexer := lexerFor(language, text)
	if styleName == "" {
		styleName = DefaultStyle
	}
	style := styles.Get(styleName)

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, text)
	if err != nil {
		return nil, false
	}
	base := style.Get(chroma.Text).Colour

	colours := make([]tcell.Color, 0, len(text))
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		fg := tcell.ColorDefault
		entry := style.Get(tok.Type)
		if entry.Colour.IsSet() && entry.Colour != base {
			fg = tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue()))
		}
		for range tok.Value {
			colours = append(colours, fg)
		}
	}

	// Lexers may normalise trailing newlines; pad or trim to the text length.
	n := len([]rune(text))
	for len(colours) < n {
		colours = append(colours, tcell.ColorDefault)
	}
	return colours[:n], true
}

func lexerFor(language, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}
