// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/tcell.go
// Summary: Display backed by a tcell screen.
// Usage: Selected with terminal.backend = "tcell".
// Notes: Text is placed by a cursor that behaves like a plain terminal: tabs
// jump to the next multiple of 8 and runes advance by their layout width,
// whatever the locale says about ambiguous-width runes.

package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/flyin/animator"
	"github.com/framegrace/flyin/layout"
)

// Tcell is a Display drawing into a tcell.Screen.
type Tcell struct {
	screen   tcell.Screen
	epilogue io.Writer
	y        int
}

// NewTcell wraps screen. The epilogue passed to Leave is written to w once
// the screen has been released.
func NewTcell(screen tcell.Screen, w io.Writer) *Tcell {
	return &Tcell{screen: screen, epilogue: w}
}

// Enter initialises the screen and hides the cursor.
func (t *Tcell) Enter() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.y = 0
	return nil
}

// Leave releases the screen and prints epilogue on the primary screen.
func (t *Tcell) Leave(epilogue string) error {
	t.screen.Fini()
	if t.epilogue == nil {
		return nil
	}
	_, err := fmt.Fprintln(t.epilogue, epilogue)
	return err
}

// Home moves the cursor to the first row.
func (t *Tcell) Home() error {
	t.y = 0
	return nil
}

// Clear erases the screen and homes the cursor.
func (t *Tcell) Clear() error {
	t.screen.Clear()
	t.y = 0
	return nil
}

// WriteText draws text line by line and ends with a line break.
func (t *Tcell) WriteText(text string) error {
	for _, line := range strings.Split(text, "\n") {
		x := 0
		for _, r := range strings.TrimSuffix(line, "\r") {
			x = t.put(x, r, tcell.StyleDefault)
		}
		t.y++
	}
	return nil
}

// WriteRow draws the row's printable cells on the current line.
func (t *Tcell) WriteRow(row animator.Row) error {
	x := 0
	for _, c := range row {
		if c.IsContinuation() {
			continue
		}
		x = t.put(x, c.Ch, tcell.StyleDefault.Foreground(c.Fg))
	}
	t.y++
	return nil
}

// Flush shows the drawn frame.
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) put(x int, r rune, style tcell.Style) int {
	if r == '\t' {
		return (x/8 + 1) * 8
	}
	w := layout.Width(r)
	t.screen.SetContent(x, t.y, r, nil, style)
	return x + w
}
