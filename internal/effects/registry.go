// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/registry.go
// Summary: Named offset curves selectable from configuration.

package effects

import (
	"log"
	"sort"
	"strings"
	"sync"
)

// DefaultCurve is the curve used when configuration names none.
const DefaultCurve = "cubic"

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Curve)
)

func init() {
	Register(DefaultCurve, CubicRemaining)
	Register("linear", Remaining(EaseLinear))
	Register("quad", Remaining(EaseOutQuad))
	Register("quint", Remaining(EaseOutQuint))
	Register("smoothstep", Remaining(EaseSmoothstep))
}

// Register associates a curve name with a curve. It panics on duplicate names.
func Register(name string, curve Curve) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic("effects: duplicate registration for " + name)
	}
	registry[name] = curve
}

// Lookup fetches a curve by name.
func Lookup(name string) (Curve, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// CurveOrDefault resolves a curve name, falling back to DefaultCurve. An
// unknown non-empty name is logged along with the valid ones.
func CurveOrDefault(name string) Curve {
	if c, ok := Lookup(name); ok {
		return c
	}
	if name != "" {
		log.Printf("Effects: unknown easing %q, using %s (known: %s)",
			name, DefaultCurve, strings.Join(RegisteredNames(), ", "))
	}
	return CubicRemaining
}

// RegisteredNames returns the sorted set of curve names.
func RegisteredNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
