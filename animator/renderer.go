// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: animator/renderer.go
// Summary: Draws composed frames onto a surface at a capped frame rate.
// Usage: Play(ctx, script, hook) renders frames 0,1,2,... until every glyph settles.
// Notes: Pacing sleeps out the rest of the frame budget; slow frames are not
// compensated and no frames are dropped.

package animator

import (
	"context"
	"time"
)

// DefaultFrameInterval caps the animation at roughly 100 frames per second.
const DefaultFrameInterval = 10 * time.Millisecond

// Surface receives one full redraw per frame.
type Surface interface {
	// Home moves the cursor to the top-left cell.
	Home() error
	// WriteText writes a block of static text followed by a line break.
	WriteText(text string) error
	// WriteRow writes one composed row followed by a line break.
	WriteRow(row Row) error
	// Flush makes everything written since Home visible.
	Flush() error
}

// PreRender draws static content above the animated rows of every frame.
type PreRender func(s Surface) error

// NoHeader is a PreRender that draws nothing.
func NoHeader(Surface) error { return nil }

// Header returns a PreRender that draws text verbatim above the animation.
func Header(text string) PreRender {
	return func(s Surface) error {
		return s.WriteText(text)
	}
}

// Renderer performs the side effects of a frame: home, header, rows, flush
// and pacing.
type Renderer struct {
	surface  Surface
	config   Config
	interval time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRenderer creates a renderer drawing to s. A non-positive interval uses
// DefaultFrameInterval.
func NewRenderer(s Surface, cfg Config, interval time.Duration) *Renderer {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Renderer{
		surface:  s,
		config:   cfg.normalized(),
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Render draws frame i of script and reports whether another frame is needed.
func (r *Renderer) Render(ctx context.Context, script Script, i uint64, pre PreRender) (bool, error) {
	start := r.now()
	frame := Compose(script, i, r.config)

	if err := r.surface.Home(); err != nil {
		return false, err
	}
	if pre != nil {
		if err := pre(r.surface); err != nil {
			return false, err
		}
	}
	for _, row := range frame.Rows {
		if err := r.surface.WriteRow(row); err != nil {
			return false, err
		}
	}
	if err := r.surface.Flush(); err != nil {
		return false, err
	}

	if elapsed := r.now().Sub(start); elapsed < r.interval {
		if err := r.sleep(ctx, r.interval-elapsed); err != nil {
			return frame.Pending, err
		}
	}
	return frame.Pending, nil
}

// Play renders frames from 0 until the script settles or ctx is done. It
// returns the number of frames drawn.
func (r *Renderer) Play(ctx context.Context, script Script, pre PreRender) (uint64, error) {
	var i uint64
	for {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		more, err := r.Render(ctx, script, i, pre)
		i++
		if err != nil {
			return i, err
		}
		if !more {
			return i, nil
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	return sleepContext(ctx, d)
}
