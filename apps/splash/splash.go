// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/splash/splash.go
// Summary: Drives the intro text and the endless code sample loop.
// Usage: New(display, texts, catalog, opts).Run(ctx) until ctx is cancelled.
// Notes: Cancellation is the normal way out; the display is always restored
// and the localized text printed on the primary screen.

package splash

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/framegrace/flyin/animator"
	"github.com/framegrace/flyin/config"
	"github.com/framegrace/flyin/internal/effects"
	"github.com/framegrace/flyin/layout"
	"github.com/framegrace/flyin/samples"
	"github.com/framegrace/flyin/terminal"
)

// Options tunes the driver.
type Options struct {
	Animation     animator.Config
	FrameInterval time.Duration
	Pause         time.Duration
	Highlight     bool
	Style         string
}

// OptionsFrom builds driver options from settings and the resolved row width.
func OptionsFrom(s config.Settings, columns int) Options {
	return Options{
		Animation: animator.Config{
			Columns:    columns,
			CharDelay:  float32(s.CharDelay),
			LineDelay:  float32(s.LineDelay),
			FrameScale: float32(s.FrameScale),
			Curve:      effects.CurveOrDefault(s.Easing),
		},
		FrameInterval: s.FrameInterval,
		Pause:         s.Pause,
		Highlight:     s.Highlight,
		Style:         s.Style,
	}
}

// Splash owns one run of the animation.
type Splash struct {
	display  terminal.Display
	renderer *animator.Renderer
	catalog  *samples.Catalog
	texts    string
	opts     Options
}

// New creates a driver rendering texts and samples from catalog on display.
func New(display terminal.Display, texts string, catalog *samples.Catalog, opts Options) *Splash {
	return &Splash{
		display:  display,
		renderer: animator.NewRenderer(display, opts.Animation, opts.FrameInterval),
		catalog:  catalog,
		texts:    texts,
		opts:     opts,
	}
}

// Run animates the intro text, then shows random samples with the intro text
// as a static header until ctx is cancelled. It returns nil on cancellation.
func (s *Splash) Run(ctx context.Context) (err error) {
	if err := s.display.Enter(); err != nil {
		return err
	}
	defer func() {
		if leaveErr := s.display.Leave(s.texts); err == nil {
			err = leaveErr
		}
	}()

	frames, err := s.renderer.Play(ctx, animator.Prepare(s.texts), animator.NoHeader)
	if err != nil {
		return ignoreCancel(err)
	}
	log.Printf("Splash: intro settled after %d frames", frames)

	firstLine := layout.FirstLine(s.texts)
	header := animator.Header(s.texts)
	for {
		sample, err := s.catalog.Next(firstLine)
		if err != nil {
			return err
		}
		log.Printf("Splash: showing %s (%s)", sample.Path, sample.Language)

		if err := s.display.Clear(); err != nil {
			return err
		}
		frames, err := s.renderer.Play(ctx, s.prepare(sample), header)
		if err != nil {
			return ignoreCancel(err)
		}
		s.catalog.Shown(sample, frames)

		if err := animator.Sleep(ctx, s.opts.Pause); err != nil {
			return ignoreCancel(err)
		}
	}
}

func (s *Splash) prepare(sample samples.Sample) animator.Script {
	if s.opts.Highlight {
		return samples.Highlight(sample.Text, sample.Language, s.opts.Style)
	}
	return animator.Prepare(sample.Text)
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
