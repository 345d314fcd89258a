// Package tui is the bubbletea front end over the dashboard engine.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dial-cli/internal/model"
)

// Loader fetches the Today plan. *api.Client satisfies it.
type Loader interface {
	Today(ctx context.Context, now time.Time) (model.Forest, error)
}

type Options struct {
	Loader Loader
	// Seed is the forest shown before the first load.
	Seed   model.Forest
	Logger *slog.Logger

	Glyphs       string
	Theme        string
	TickInterval time.Duration
	// LoadTimeout bounds one fetch; zero leaves it to the loader.
	LoadTimeout time.Duration

	Now func() time.Time
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
