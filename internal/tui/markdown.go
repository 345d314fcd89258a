package tui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"dial-cli/internal/model"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. WithAutoStyle is avoided:
	// it can block on terminal background queries.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := themeName()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	var cfg ansi.StyleConfig
	if styleName == "light" {
		cfg = styles.LightStyleConfig
	} else {
		cfg = styles.DarkStyleConfig
	}
	zero := uint(0)
	cfg.Document.Margin = &zero

	headingColor := mdColor(colorSurfaceFg, styleName)
	cfg.Heading.Color = headingColor
	cfg.H1.Color = headingColor
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = headingColor

	cfg.Code.Color = mdColor(colorSurfaceFg, styleName)
	cfg.Code.BackgroundColor = mdColor(colorControlBg, styleName)
	cfg.Text.Color = mdColor(colorSurfaceFg, styleName)
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	return cfg
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	if styleName == "light" {
		return &c.Light
	}
	return &c.Dark
}

// taskMarkdown is the detail pane summary of one task.
func taskMarkdown(t *model.Task) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "(untitled)"
	}
	if icon := strings.TrimSpace(t.Icon); icon != "" {
		title = icon + " " + title
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- **Status:** %s\n", t.Status.Label())
	fmt.Fprintf(&b, "- **Priority:** %s\n", t.Priority.String())
	fmt.Fprintf(&b, "- **Period:** %s", t.Type.String())
	if !t.Period.Start.IsZero() {
		fmt.Fprintf(&b, ", %s to %s", t.Period.Start.Local().Format("2006-01-02 15:04"), t.Period.End.Local().Format("2006-01-02 15:04"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- **Score:** %d\n", t.Score)
	if len(t.Tags) > 0 {
		tags := make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, "`"+tag+"`")
			}
		}
		if len(tags) > 0 {
			fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(tags, " "))
		}
	}
	if n := len(t.Children); n > 0 {
		done := 0
		for _, ch := range t.Children {
			if ch != nil && ch.Status == model.StatusCompleted {
				done++
			}
		}
		fmt.Fprintf(&b, "- **Subtasks:** %d/%d done\n", done, n)
	}
	fmt.Fprintf(&b, "\n`%s`\n", t.ID)
	return b.String()
}
