package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dial-cli/internal/dashboard"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m appModel) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// listHeight is the number of outline rows that fit between the nav bar and
// the status and help lines.
func (m appModel) listHeight() int {
	_, h := m.size()
	h -= 2 + lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) View() string {
	w, _ := m.size()
	fr := m.dash.Frame()

	nav := m.viewNav(fr, w)
	body := m.viewBody(fr, w, m.listHeight())
	status := m.viewStatus(fr, w)
	m.help.Width = w
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, nav, body, status, helpView)
}

func (m appModel) viewNav(fr dashboard.Frame, width int) string {
	active := lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true).Padding(0, 1)
	inactive := styleMuted().Padding(0, 1)

	var tabs []string
	for _, mode := range dashboard.Modes() {
		if mode == fr.Mode {
			tabs = append(tabs, active.Render(mode.Title()))
		} else {
			tabs = append(tabs, inactive.Render(mode.Title()))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	clock := styleMuted().Render(m.now.Format("15:04:05"))

	gap := width - lipgloss.Width(left) - lipgloss.Width(clock)
	if gap < 1 {
		return fitWidth(left, width)
	}
	return left + strings.Repeat(" ", gap) + clock
}

func (m appModel) viewBody(fr dashboard.Frame, width, height int) string {
	if !fr.Mode.ShowsTree() {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render(fr.Mode.Title()),
			"",
			styleMuted().Render("This view is not implemented yet"),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	listW := width
	showDetail := width >= detailMinWidth && fr.Selected != nil
	if showDetail {
		listW = width * 3 / 5
	}

	list := m.viewRows(fr, listW, height)
	if !showDetail {
		return list
	}

	sepStyle := styleMuted()
	sep := make([]string, height)
	for i := range sep {
		sep[i] = sepStyle.Render(glyphSeparator())
	}
	detailW := width - listW - 2
	detail := normalizePane(renderMarkdown(taskMarkdown(fr.Selected), detailW), detailW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, strings.Join(sep, "\n"), " ", detail)
}

func (m appModel) viewRows(fr dashboard.Frame, width, height int) string {
	if len(fr.Rows) == 0 {
		hint := "No tasks."
		if fr.Mode != dashboard.ModeToday {
			hint = "No tasks. Press tab to open Today and load your plan."
		}
		return normalizePane(styleMuted().Render(hint), width, height)
	}

	start := scrollOffset(m.offset, fr.Cursor, height, len(fr.Rows))
	end := min(start+height, len(fr.Rows))
	lines := make([]string, 0, height)
	for _, r := range fr.Rows[start:end] {
		lines = append(lines, m.rowView.Render(r, width))
	}
	return normalizePane(strings.Join(lines, "\n"), width, height)
}

func (m appModel) viewStatus(fr dashboard.Frame, width int) string {
	switch {
	case fr.Loading:
		return fitWidth(m.spinner.View()+" Loading…", width)
	case fr.HasError():
		st := lipgloss.NewStyle().Foreground(colorError).Bold(true)
		return fitWidth(st.Render("Error: "+fr.Err)+styleMuted().Render("  (esc to dismiss)"), width)
	}
	pos := "0/0"
	if n := len(fr.Rows); n > 0 {
		pos = fmt.Sprintf("%d/%d", fr.Cursor+1, n)
	}
	return fitWidth(styleMuted().Render(fmt.Sprintf("%s  %s  %d tasks", fr.Mode.Title(), pos, m.dash.Forest().Len())), width)
}
