package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"dial-cli/internal/model"
)

// Theme/palette helpers. Colors are adaptive so the TUI stays readable on
// light and dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "235")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorError      = ac("160", "203")

	colorStatusTodo      = ac("130", "214")
	colorStatusDoing     = ac("27", "75")
	colorStatusDone      = ac("28", "114")
	colorStatusCancelled = ac("244", "242")

	colorPriorityUrgent = ac("160", "203")
	colorPriorityHigh   = ac("166", "215")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleStatus(s model.TaskStatus) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch s {
	case model.StatusInProgress:
		return st.Foreground(colorStatusDoing)
	case model.StatusCompleted:
		return st.Foreground(colorStatusDone)
	case model.StatusCancelled:
		return st.Foreground(colorStatusCancelled)
	default:
		return st.Foreground(colorStatusTodo)
	}
}

func stylePriority(p model.TaskPriority) lipgloss.Style {
	switch p {
	case model.PriorityUrgent:
		return lipgloss.NewStyle().Foreground(colorPriorityUrgent).Bold(true)
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorPriorityHigh)
	case model.PriorityLow:
		return styleMuted()
	default:
		return lipgloss.NewStyle().Foreground(colorSurfaceFg)
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honored; CLICOLOR handling in termenv.EnvColorProfile is
// meant for piped CLI output.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector found.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

var (
	themeMu   sync.RWMutex
	themeDark *bool
)

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) pref (config tui.theme / DIAL_TUI_THEME): light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg")
// 3) macOS appearance
func applyThemePreference(pref string) {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "light":
		setDarkBackground(false)
		return
	case "dark":
		setDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			setDarkBackground(bg < 7)
			return
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			setDarkBackground(dark)
			return
		}
	}
}

func setDarkBackground(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
	themeMu.Lock()
	themeDark = &dark
	themeMu.Unlock()
}

// themeName is "light" or "dark"; markdown styles follow it.
func themeName() string {
	themeMu.RLock()
	d := themeDark
	themeMu.RUnlock()
	if d != nil {
		if *d {
			return "dark"
		}
		return "light"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and
	// exits 1 in light mode.
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
