package outline

// ExpandSet holds the ids of tasks whose children are visible. Ids that no
// longer exist in the forest stay in the set and are simply never matched.
type ExpandSet map[string]bool

func NewExpandSet(ids ...string) ExpandSet {
	s := ExpandSet{}
	for _, id := range ids {
		s[id] = true
	}
	return s
}

func (s ExpandSet) Has(id string) bool { return s[id] }

func (s ExpandSet) Expand(id string) {
	if id != "" {
		s[id] = true
	}
}

func (s ExpandSet) Collapse(id string) { delete(s, id) }

// Toggle flips id and reports whether it is now expanded.
func (s ExpandSet) Toggle(id string) bool {
	if s[id] {
		delete(s, id)
		return false
	}
	s.Expand(id)
	return s[id]
}

func (s ExpandSet) Len() int { return len(s) }
