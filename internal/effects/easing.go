// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/easing.go
// Summary: Easing functions and the offset curves derived from them.
// Usage: The animator asks a Curve how far a glyph still is from its resting column.
// Notes: All arithmetic is float32 so frame boundaries match across curves.

package effects

// EasingFunc defines an easing function that maps progress [0,1] to eased value [0,1]
type EasingFunc func(progress float32) float32

// Common easing functions
var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep - Smooth S-curve
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseOutQuad - Quadratic ease-out (fast start, decelerating)
	EaseOutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}

	// EaseOutCubic - Cubic ease-out
	EaseOutCubic EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	// EaseOutQuint - Quintic ease-out, snappier than cubic
	EaseOutQuint EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1*t1*t1 + 1.0
	}
)

// Curve maps local time t in [0,1] to the remaining distance as a fraction
// of the row width: 1 at t=0, 0 at t=1.
type Curve func(t float32) float32

// CubicRemaining is (1-t)^3, the fly-in curve. It is written out rather than
// derived from EaseOutCubic so floor() of the offset is exact.
var CubicRemaining Curve = func(t float32) float32 {
	r := 1.0 - t
	return r * r * r
}

// Remaining turns an easing function into an offset curve.
func Remaining(ease EasingFunc) Curve {
	if ease == nil {
		return CubicRemaining
	}
	return func(t float32) float32 {
		return 1.0 - ease(t)
	}
}

// Offset returns floor(curve(t) * columns) for t in [0,1], clamped to
// [0, columns].
func Offset(curve Curve, t float32, columns int) int {
	if curve == nil {
		curve = CubicRemaining
	}
	v := curve(t) * float32(columns)
	if v <= 0 {
		return 0
	}
	n := int(v)
	if n > columns {
		n = columns
	}
	return n
}
