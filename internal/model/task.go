package model

import (
	"encoding/json"
	"time"
)

type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the interval is well formed (start <= end).
func (p Period) Valid() bool {
	return !p.End.Before(p.Start)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Covers reports whether q lies entirely inside p.
func (p Period) Covers(q Period) bool {
	return !q.Start.Before(p.Start) && !q.End.After(p.End)
}

type Task struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Type      PeriodType   `json:"type"`
	Period    Period       `json:"period"`
	Status    TaskStatus   `json:"status"`
	Tags      []string     `json:"tags"`
	Icon      string       `json:"icon"`
	Score     int          `json:"score"`
	Priority  TaskPriority `json:"priority"`
	ParentID  string       `json:"parent_id,omitempty"`
	UserID    string       `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	// Server-maintained tree hints. Display only; Children is authoritative.
	HasChildren   bool   `json:"has_children"`
	ChildrenCount int    `json:"children_count"`
	TreeDepth     int    `json:"tree_depth"`
	RootTaskID    string `json:"root_task_id,omitempty"`

	Children []*Task `json:"children"`
}

// UnmarshalJSON accepts the period kind under either "type" or the server's
// "task_type" key.
func (t *Task) UnmarshalJSON(b []byte) error {
	type wire Task
	aux := struct {
		*wire
		Type     *PeriodType `json:"type"`
		TaskType *PeriodType `json:"task_type"`
	}{wire: (*wire)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	switch {
	case aux.Type != nil:
		t.Type = *aux.Type
	case aux.TaskType != nil:
		t.Type = *aux.TaskType
	}
	return nil
}

func (t *Task) IsRoot() bool {
	return t.ParentID == ""
}

func (t *Task) clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.Children != nil {
		c.Children = make([]*Task, len(t.Children))
		for i, ch := range t.Children {
			c.Children[i] = ch.clone()
		}
	}
	return &c
}
