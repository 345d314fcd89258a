package format

import (
	"bufio"
	"io"
	"strings"

	"dial-cli/internal/model"
)

// WriteTree writes one line per task, fully expanded, children indented under
// their parent. With pretty set, branches are drawn with box characters.
func WriteTree(w io.Writer, f model.Forest, pretty bool) error {
	bw := bufio.NewWriter(w)
	var walk func(ts []*model.Task, prefix string)
	walk = func(ts []*model.Task, prefix string) {
		for i, t := range ts {
			if t == nil {
				continue
			}
			last := i == len(ts)-1
			lead, next := prefix+"- ", prefix+"  "
			if pretty {
				if last {
					lead, next = prefix+"└─ ", prefix+"   "
				} else {
					lead, next = prefix+"├─ ", prefix+"│  "
				}
			}
			bw.WriteString(lead)
			bw.WriteString(TaskLine(t))
			bw.WriteByte('\n')
			walk(t.Children, next)
		}
	}
	walk(f, "")
	return bw.Flush()
}

// TaskLine is the single-line summary of a task: status, title, priority,
// tags and id.
func TaskLine(t *model.Task) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(t.Status.Label())
	b.WriteString("] ")
	b.WriteString(t.Title)
	b.WriteString(" ")
	b.WriteString(t.Priority.Label())
	for _, tag := range t.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			b.WriteString(" #")
			b.WriteString(tag)
		}
	}
	b.WriteString(" (")
	b.WriteString(t.ID)
	b.WriteString(")")
	return b.String()
}
