// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/ansi.go
// Summary: Raw escape-sequence display writing frames through a buffered writer.
// Notes: Rows without colour are written byte for byte as plain text, so the
// output matches a println-based renderer.

package terminal

import (
	"bufio"
	"io"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/flyin/animator"
)

var (
	csiHome           = []byte("\x1b[H")
	csiClear          = []byte("\x1b[H\x1b[2J")
	csiCursorHide     = []byte("\x1b[?25l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiFgRGB          = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiDefaultFg      = []byte("\x1b[39m")
)

// ANSI is a Display that speaks raw escape sequences.
type ANSI struct {
	out *bufio.Writer
	fg  tcell.Color
}

// NewANSI creates an ANSI display writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{
		out: bufio.NewWriterSize(w, 16*1024),
		fg:  tcell.ColorDefault,
	}
}

// Enter switches to the alternate screen and hides the cursor.
func (a *ANSI) Enter() error {
	a.out.Write(csiAltScreenEnter)
	a.out.Write(csiCursorHide)
	return a.out.Flush()
}

// Leave restores the cursor and the primary screen, then prints epilogue.
func (a *ANSI) Leave(epilogue string) error {
	a.resetFg()
	a.out.Write(csiCursorShow)
	a.out.Write(csiAltScreenExit)
	a.out.WriteString(epilogue)
	a.out.WriteByte('\n')
	return a.out.Flush()
}

// Home moves the cursor to the top-left cell.
func (a *ANSI) Home() error {
	_, err := a.out.Write(csiHome)
	return err
}

// Clear erases the screen and homes the cursor.
func (a *ANSI) Clear() error {
	a.out.Write(csiClear)
	return a.out.Flush()
}

// WriteText writes text followed by a newline.
func (a *ANSI) WriteText(text string) error {
	a.out.WriteString(text)
	return a.out.WriteByte('\n')
}

// WriteRow writes the row's printable cells followed by a newline.
func (a *ANSI) WriteRow(row animator.Row) error {
	for _, c := range row {
		if c.IsContinuation() {
			continue
		}
		if c.Fg != a.fg {
			a.setFg(c.Fg)
		}
		a.out.WriteRune(c.Ch)
	}
	a.resetFg()
	return a.out.WriteByte('\n')
}

// Flush pushes buffered output to the terminal.
func (a *ANSI) Flush() error {
	return a.out.Flush()
}

func (a *ANSI) setFg(c tcell.Color) {
	a.fg = c
	if c == tcell.ColorDefault {
		a.out.Write(csiDefaultFg)
		return
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		a.fg = tcell.ColorDefault
		a.out.Write(csiDefaultFg)
		return
	}
	a.out.Write(csiFgRGB)
	a.out.WriteString(strconv.Itoa(int(r)))
	a.out.WriteByte(';')
	a.out.WriteString(strconv.Itoa(int(g)))
	a.out.WriteByte(';')
	a.out.WriteString(strconv.Itoa(int(b)))
	a.out.WriteByte('m')
}

func (a *ANSI) resetFg() {
	if a.fg != tcell.ColorDefault {
		a.fg = tcell.ColorDefault
		a.out.Write(csiDefaultFg)
	}
}
