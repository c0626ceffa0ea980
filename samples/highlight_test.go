package samples

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/flyin/animator"
)

func TestHighlightKeepsLayout(t *testing.T) {
	text := "package main\r\n\nfunc main() {\n\tprintln(\"你好\")\n}\n"
	plain := animator.Prepare(text)
	coloured := Highlight(text, "Go", "")

	if len(plain) != len(coloured) {
		t.Fatalf("expected %d lines, got %d", len(plain), len(coloured))
	}
	for l := range plain {
		if len(plain[l]) != len(coloured[l]) {
			t.Fatalf("line %d: expected %d glyphs, got %d", l, len(plain[l]), len(coloured[l]))
		}
		for j := range plain[l] {
			if plain[l][j].Ch != coloured[l][j].Ch || plain[l][j].Width != coloured[l][j].Width {
				t.Fatalf("line %d col %d: glyph mismatch %q vs %q", l, j, plain[l][j].Ch, coloured[l][j].Ch)
			}
		}
	}
}

func TestHighlightColoursKeywords(t *testing.T) {
	script := Highlight("package main\n", "Go", "monokai")
	if len(script) != 1 {
		t.Fatalf("expected one line, got %d", len(script))
	}
	if script[0][0].Fg == tcell.ColorDefault {
		t.Fatalf("expected the 'package' keyword to be coloured")
	}
}

func TestHighlightEmptyText(t *testing.T) {
	if got := Highlight("", "Go", ""); len(got) != 0 {
		t.Fatalf("expected empty script, got %d lines", len(got))
	}
}

func TestDetect(t *testing.T) {
	if got := Detect("code/main.rs", "fn main() {}\n"); got != "Rust" {
		t.Fatalf("expected Rust, got %q", got)
	}
}
