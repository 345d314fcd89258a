package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"dial-cli/internal/dashboard"
)

func (m appModel) Init() tea.Cmd { return tickClock(m.tick) }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.keepCursorVisible()
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, tickClock(m.tick)

	case spinner.TickMsg:
		// Let the spinner stop ticking once nothing is loading.
		if !m.dash.Sync().IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case planLoadedMsg:
		if msg.err != nil {
			m.log.Warn("plan load failed", "err", msg.err, "dur", msg.took)
		} else {
			m.log.Info("plan loaded", "roots", len(msg.forest), "tasks", msg.forest.Len(), "dur", msg.took)
		}
		m.dash.FinishLoad(msg.forest, msg.err)
		m.keepCursorVisible()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.keepCursorVisible()
			return m, nil
		}
		action := m.keys.action(msg)
		if action == dashboard.ActionNone {
			return m, nil
		}
		switch m.dash.Apply(action) {
		case dashboard.EffectQuit:
			return m, tea.Quit
		case dashboard.EffectLoad:
			m.log.Debug("plan load started", "mode", m.dash.Mode().String())
			return m, tea.Batch(m.loadTodayCmd(), m.spinner.Tick)
		}
		m.keepCursorVisible()
		return m, nil
	}
	return m, nil
}

// loadTodayCmd runs the fetch on bubbletea's command goroutine. It never
// touches the dashboard; the result comes back as planLoadedMsg.
func (m appModel) loadTodayCmd() tea.Cmd {
	loader := m.loader
	now := m.clock()
	timeout := m.loadTimeout
	return func() tea.Msg {
		if loader == nil {
			return planLoadedMsg{err: errors.New("no plan service configured")}
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		forest, err := loader.Today(ctx, now)
		return planLoadedMsg{forest: forest, err: err, took: time.Since(start)}
	}
}

func (m *appModel) keepCursorVisible() {
	m.offset = scrollOffset(m.offset, m.dash.Cursor(), m.listHeight(), len(m.dash.Rows()))
}
