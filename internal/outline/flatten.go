package outline

import "dial-cli/internal/model"

type Marker int

const (
	MarkerLeaf Marker = iota
	MarkerCollapsed
	MarkerExpanded
)

// Row is one visible line of the outline.
type Row struct {
	Task        *model.Task
	Depth       int
	HasChildren bool
	Expanded    bool
}

func (r Row) Marker() Marker {
	switch {
	case !r.HasChildren:
		return MarkerLeaf
	case r.Expanded:
		return MarkerExpanded
	default:
		return MarkerCollapsed
	}
}

// Flatten returns the visible rows of the forest in pre-order. A task's
// children are emitted only when the task itself is expanded, so collapsing a
// node hides its whole subtree whatever the descendants' own state.
func Flatten(forest model.Forest, expanded ExpandSet) []Row {
	var out []Row
	var walk func(t *model.Task, depth int)
	walk = func(t *model.Task, depth int) {
		open := expanded.Has(t.ID)
		out = append(out, Row{
			Task:        t,
			Depth:       depth,
			HasChildren: len(t.Children) > 0,
			Expanded:    open,
		})
		if !open {
			return
		}
		for _, ch := range t.Children {
			if ch != nil {
				walk(ch, depth+1)
			}
		}
	}
	for _, r := range forest {
		if r != nil {
			walk(r, 0)
		}
	}
	return out
}
