package model

import "strings"

// Forest is the ordered list of root tasks. Each task exclusively owns its
// Children; ParentID is a back-reference only.
type Forest []*Task

// Walk visits every task in pre-order with its distance from the root.
// Returning false from fn stops the walk.
func (f Forest) Walk(fn func(t *Task, depth int) bool) {
	var walk func(ts []*Task, depth int) bool
	walk = func(ts []*Task, depth int) bool {
		for _, t := range ts {
			if t == nil {
				continue
			}
			if !fn(t, depth) {
				return false
			}
			if !walk(t.Children, depth+1) {
				return false
			}
		}
		return true
	}
	walk(f, 0)
}

// Find returns the first task with the given id in pre-order, or nil.
func (f Forest) Find(id string) *Task {
	var found *Task
	f.Walk(func(t *Task, _ int) bool {
		if t.ID == id {
			found = t
			return false
		}
		return true
	})
	return found
}

func (f Forest) Len() int {
	n := 0
	f.Walk(func(*Task, int) bool {
		n++
		return true
	})
	return n
}

// Clone returns a deep copy; mutating the copy never touches f.
func (f Forest) Clone() Forest {
	if f == nil {
		return nil
	}
	out := make(Forest, len(f))
	for i, t := range f {
		out[i] = t.clone()
	}
	return out
}

// Within returns a copy holding only the tasks whose period lies inside p.
// Kept descendants of a dropped task take its place among its siblings.
func (f Forest) Within(p Period) Forest {
	var keep func(ts []*Task) []*Task
	keep = func(ts []*Task) []*Task {
		var out []*Task
		for _, t := range ts {
			if t == nil {
				continue
			}
			kids := keep(t.Children)
			if !p.Covers(t.Period) {
				out = append(out, kids...)
				continue
			}
			t.Children = kids
			t.HasChildren = len(kids) > 0
			t.ChildrenCount = len(kids)
			out = append(out, t)
		}
		return out
	}
	return Forest(keep(f.Clone()))
}

// Index maps task ids to nodes inside one forest. It is only valid until the
// forest is replaced.
type Index map[string]*Task

func NewIndex(f Forest) Index {
	idx := Index{}
	f.Walk(func(t *Task, _ int) bool {
		if _, ok := idx[t.ID]; !ok {
			idx[t.ID] = t
		}
		return true
	})
	return idx
}

func (idx Index) Get(id string) (*Task, bool) {
	t, ok := idx[id]
	return t, ok
}

// FromFlat nests a flat task list by ParentID, keeping input order among
// siblings. A task whose parent is missing becomes a root so its subtree is
// not orphaned. Existing Children lists are discarded.
func FromFlat(tasks []*Task) Forest {
	present := map[string]bool{}
	for _, t := range tasks {
		if t != nil {
			present[t.ID] = true
		}
	}
	children := map[string][]*Task{}
	var roots Forest
	for _, t := range tasks {
		if t == nil {
			continue
		}
		t.Children = nil
		pid := strings.TrimSpace(t.ParentID)
		if pid == "" || pid == t.ID || !present[pid] {
			roots = append(roots, t)
			continue
		}
		children[pid] = append(children[pid], t)
	}

	// Attach children top-down from the roots; anything unreachable (a parent
	// cycle) is promoted to a root.
	// Attachment is tracked per node so tasks sharing an id are all kept.
	attached := map[*Task]bool{}
	expanded := map[string]bool{}
	var attach func(t *Task)
	attach = func(t *Task) {
		attached[t] = true
		if expanded[t.ID] {
			return
		}
		expanded[t.ID] = true
		for _, ch := range children[t.ID] {
			if attached[ch] {
				continue
			}
			t.Children = append(t.Children, ch)
			attach(ch)
		}
	}
	for _, r := range roots {
		attach(r)
	}
	for _, t := range tasks {
		if t != nil && !attached[t] {
			roots = append(roots, t)
			attach(t)
		}
	}
	return roots
}

// IsFlat reports whether the forest looks like a flat server listing: no task
// owns children but at least one points at a parent that is present.
func (f Forest) IsFlat() bool {
	ids := map[string]bool{}
	for _, t := range f {
		if t == nil {
			continue
		}
		if len(t.Children) > 0 {
			return false
		}
		ids[t.ID] = true
	}
	for _, t := range f {
		if t != nil && t.ParentID != "" && ids[t.ParentID] {
			return true
		}
	}
	return false
}
