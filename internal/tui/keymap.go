package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dial-cli/internal/dashboard"
)

type keyMap struct {
	Quit     key.Binding
	NextMode key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Dismiss  key.Binding
	Help     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "cycle status")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss error")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.Up, k.Down, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Collapse, k.Expand},
		{k.Toggle, k.NextMode, k.Dismiss},
		{k.Help, k.Quit},
	}
}

// action maps a key press onto the engine's action set. Keys with no
// binding map to ActionNone.
func (k keyMap) action(msg tea.KeyMsg) dashboard.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return dashboard.ActionQuit
	case key.Matches(msg, k.NextMode):
		return dashboard.ActionNextMode
	case key.Matches(msg, k.Up):
		return dashboard.ActionUp
	case key.Matches(msg, k.Down):
		return dashboard.ActionDown
	case key.Matches(msg, k.Toggle):
		return dashboard.ActionToggleStatus
	case key.Matches(msg, k.Collapse):
		return dashboard.ActionCollapse
	case key.Matches(msg, k.Expand):
		return dashboard.ActionExpand
	case key.Matches(msg, k.Dismiss):
		return dashboard.ActionDismissError
	default:
		return dashboard.ActionNone
	}
}
