package tui

import (
	"strings"
	"sync"

	"dial-cli/internal/model"
	"dial-cli/internal/outline"
)

// Terminal apps can't change the user's font. Instead we choose between
// Unicode and ASCII glyph sets for twisties, status icons and separators.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference takes the configured value (config tui.glyphs or
// DIAL_TUI_GLYPHS).
func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphTwisty(m outline.Marker) string {
	ascii := glyphs() == glyphSetASCII
	switch m {
	case outline.MarkerCollapsed:
		if ascii {
			return ">"
		}
		return "▸"
	case outline.MarkerExpanded:
		if ascii {
			return "v"
		}
		return "▾"
	default:
		return " "
	}
}

func glyphStatus(s model.TaskStatus) string {
	if glyphs() != glyphSetASCII {
		return s.Icon()
	}
	switch s {
	case model.StatusInProgress:
		return "~"
	case model.StatusCompleted:
		return "x"
	case model.StatusCancelled:
		return "-"
	default:
		return "o"
	}
}

func glyphSeparator() string {
	if glyphs() == glyphSetASCII {
		return "|"
	}
	return "│"
}
