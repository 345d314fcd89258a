package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type TaskStatus int

const (
	StatusNotStarted TaskStatus = iota
	StatusInProgress
	StatusCompleted
	StatusCancelled
)

var statusNames = []string{"NotStarted", "InProgress", "Completed", "Cancelled"}

// Next advances the status cycle. Every status has exactly one successor, so
// four calls return to the starting value.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	case StatusCompleted:
		return StatusCancelled
	default:
		return StatusNotStarted
	}
}

func (s TaskStatus) String() string { return enumName(statusNames, int(s)) }

// Label is the short human label used by the renderer and the tree writer.
func (s TaskStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "doing"
	case StatusCompleted:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return "todo"
	}
}

// Icon is the one-cell status glyph.
func (s TaskStatus) Icon() string {
	switch s {
	case StatusInProgress:
		return "◐"
	case StatusCompleted:
		return "✓"
	case StatusCancelled:
		return "✗"
	default:
		return "○"
	}
}

func (s TaskStatus) IsEndState() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TaskStatus) UnmarshalJSON(b []byte) error {
	i, err := parseEnum(b, "status", statusNames, map[string]int{
		"not_started": 0, "notstarted": 0, "pending": 0, "todo": 0,
		"in_progress": 1, "in-progress": 1, "inprogress": 1, "doing": 1,
		"completed": 2, "done": 2,
		"cancelled": 3, "canceled": 3,
	})
	if err != nil {
		return err
	}
	*s = TaskStatus(i)
	return nil
}

type TaskPriority int

const (
	PriorityLow TaskPriority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = []string{"Low", "Medium", "High", "Urgent"}

func (p TaskPriority) String() string { return enumName(priorityNames, int(p)) }

func (p TaskPriority) Label() string { return "[" + p.String() + "]" }

func (p TaskPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *TaskPriority) UnmarshalJSON(b []byte) error {
	i, err := parseEnum(b, "priority", priorityNames, map[string]int{
		"low": 0, "medium": 1, "high": 2, "urgent": 3,
	})
	if err != nil {
		return err
	}
	*p = TaskPriority(i)
	return nil
}

type PeriodType int

const (
	PeriodDaily PeriodType = iota
	PeriodWeekly
	PeriodMonthly
	PeriodQuarterly
	PeriodYearly
)

var periodTypeNames = []string{"daily", "weekly", "monthly", "quarterly", "yearly"}

func (p PeriodType) String() string { return enumName(periodTypeNames, int(p)) }

func (p PeriodType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PeriodType) UnmarshalJSON(b []byte) error {
	i, err := parseEnum(b, "period type", periodTypeNames, map[string]int{
		"day": 0, "week": 1, "month": 2, "quarter": 3, "year": 4,
	})
	if err != nil {
		return err
	}
	*p = PeriodType(i)
	return nil
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return strconv.Itoa(i)
	}
	return names[i]
}

// parseEnum accepts the canonical name, a lowercase alias, or the server's
// integer ordinal.
func parseEnum(b []byte, kind string, names []string, aliases map[string]int) (int, error) {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(names) {
			return 0, fmt.Errorf("invalid %s: %d", kind, n)
		}
		return n, nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return 0, fmt.Errorf("invalid %s: %s", kind, s)
	}
	str = strings.TrimSpace(str)
	for i, name := range names {
		if strings.EqualFold(str, name) {
			return i, nil
		}
	}
	if i, ok := aliases[strings.ToLower(str)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("invalid %s: %q", kind, str)
}
