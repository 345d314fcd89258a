package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"dial-cli/internal/dashboard"
	"dial-cli/internal/logging"
)

const (
	defaultTickInterval = time.Second
	// Below this width the detail pane is hidden.
	detailMinWidth = 100
)

type appModel struct {
	dash   *dashboard.Dashboard
	loader Loader
	log    *slog.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	rowView outlineRowDelegate

	width  int
	height int
	// First visible row of the outline.
	offset int

	now         time.Time
	clock       func() time.Time
	tick        time.Duration
	loadTimeout time.Duration
}

func newAppModel(opts Options) appModel {
	clock := opts.Now
	if clock == nil {
		clock = time.Now
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = defaultTickInterval
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	h := help.New()
	h.ShortSeparator = "  "

	return appModel{
		dash:        dashboard.New(opts.Seed),
		loader:      opts.Loader,
		log:         log,
		keys:        defaultKeyMap(),
		help:        h,
		spinner:     sp,
		rowView:     newOutlineRowDelegate(),
		now:         clock(),
		clock:       clock,
		tick:        tick,
		loadTimeout: opts.LoadTimeout,
	}
}
