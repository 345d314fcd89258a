package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"dial-cli/internal/dashboard"
)

type outlineRowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newOutlineRowDelegate() outlineRowDelegate {
	return outlineRowDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

// Render draws one outline row exactly width columns wide. The selected row
// gets a full-width background.
func (d outlineRowDelegate) Render(r dashboard.FrameRow, width int) string {
	if width < 4 || r.Task == nil {
		return strings.Repeat(" ", max(width, 0))
	}
	t := r.Task

	base := d.normal
	var bg lipgloss.TerminalColor
	if r.Selected {
		base = d.selected
		bg = d.selected.GetBackground()
	}
	// Every segment carries the row background so an inner ANSI reset does not
	// clear the highlight for the rest of the row.
	seg := func(st lipgloss.Style, s string) string {
		if bg != nil {
			st = st.Background(bg)
		}
		return st.Render(s)
	}

	indent := strings.Repeat("  ", r.Depth)
	out := base.Render(indent + glyphTwisty(r.Marker()) + " ")
	out += seg(styleStatus(t.Status), glyphStatus(t.Status)) + base.Render(" ")
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "(untitled)"
	}
	out += base.Render(title)
	out += base.Render(" ") + seg(stylePriority(t.Priority), t.Priority.Label())
	for _, tag := range t.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out += base.Render(" ") + seg(styleMuted(), "#"+tag)
		}
	}

	curW := xansi.StringWidth(out)
	if curW < width {
		out += base.Render(strings.Repeat(" ", width-curW))
	} else if curW > width {
		out = xansi.Cut(out, 0, width)
	}
	return out
}
