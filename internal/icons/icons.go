// Package icons resolves the glyph names used by the navigation tree. The
// glyph map is optional: when it cannot be loaded within the bounded retry
// window the shell proceeds with a plain fallback marker.
package icons

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/navkit/navshell/internal/logging"
)

const fallbackGlyph = "•"

// builtin covers the names the embedded default tree uses, so the shell
// has sensible icons even with no map file at all.
var builtin = map[string]string{
	"home":   "⌂",
	"users":  "◉",
	"user":   "○",
	"folder": "▸",
	"gear":   "✦",
	"star":   "★",
	"bell":   "◆",
	"book":   "▤",
	"award":  "✪",
	"play":   "▶",
	"box":    "□",
	"brush":  "✎",
	"lock":   "▪",
	"search": "/",
}

// Set maps icon names to glyphs.
type Set struct {
	glyphs map[string]string
}

// Glyph resolves a name, falling back to a plain marker for unknown names
// or an empty set.
func (s *Set) Glyph(name string) string {
	if s != nil {
		if g, ok := s.glyphs[name]; ok {
			return g
		}
	}
	if g, ok := builtin[name]; ok {
		return g
	}
	return fallbackGlyph
}

// Builtin returns the embedded glyph table.
func Builtin() *Set {
	return &Set{glyphs: builtin}
}

// Load reads a JSON name→glyph map and merges it over the builtin table.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon map: %w", err)
	}
	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("decode icon map %s: %w", path, err)
	}
	glyphs := make(map[string]string, len(builtin)+len(overrides))
	for name, glyph := range builtin {
		glyphs[name] = glyph
	}
	for name, glyph := range overrides {
		glyphs[name] = glyph
	}
	return &Set{glyphs: glyphs}, nil
}

// Poll retries Load at a fixed interval up to attempts times, then gives up
// and returns the builtin set so the shell renders without custom icons.
// The loop self-terminates; there is no cancellable long-running load.
func Poll(ctx context.Context, path string, interval time.Duration, attempts int) *Set {
	if path == "" {
		return Builtin()
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		set, err := Load(path)
		if err == nil {
			return set
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return Builtin()
		case <-time.After(interval):
		}
	}
	logging.Warnf("icon map unavailable after %d attempts, continuing without: %v", attempts, lastErr)
	return Builtin()
}
