package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dial-cli/internal/model"
)

type clockTickMsg time.Time

// planLoadedMsg carries the result of one remote load back onto the update
// goroutine.
type planLoadedMsg struct {
	forest model.Forest
	err    error
	took   time.Duration
}

func tickClock(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}
