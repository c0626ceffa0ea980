// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: terminal/display.go
// Summary: Display contract, backend selection and terminal size detection.

package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/flyin/animator"
)

// Backend names accepted by Open.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Display is a Surface with a lifecycle: Enter takes over the screen, Leave
// gives it back and prints a final message on the primary screen.
type Display interface {
	animator.Surface
	Enter() error
	Clear() error
	Leave(epilogue string) error
}

// Open returns the display for the named backend writing to out.
func Open(backend string, out *os.File) (Display, error) {
	switch backend {
	case "", BackendANSI:
		return NewANSI(out), nil
	case BackendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create tcell screen: %w", err)
		}
		return NewTcell(screen, out), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", backend)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Columns returns the width of the terminal behind f, or fallback when f is
// not a terminal or its size is unknown.
func Columns(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
