// Package period computes the request windows sent to the plan service.
//
// A window starts at the local-calendar boundary of the period containing the
// reference time and is expressed in UTC. Weeks start on Monday.
package period

import (
	"fmt"
	"strings"
	"time"

	"dial-cli/internal/model"
)

type Kind string

const (
	Day     Kind = "day"
	Week    Kind = "week"
	Month   Kind = "month"
	Quarter Kind = "quarter"
	Year    Kind = "year"
)

func Kinds() []Kind { return []Kind{Day, Week, Month, Quarter, Year} }

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily", "today":
		return Day, nil
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "quarter", "quarterly":
		return Quarter, nil
	case "year", "yearly":
		return Year, nil
	default:
		return "", fmt.Errorf("unknown period: %q (want day|week|month|quarter|year)", s)
	}
}

// PeriodType maps a window kind onto the task classification of the same
// length.
func (k Kind) PeriodType() model.PeriodType {
	switch k {
	case Week:
		return model.PeriodWeekly
	case Month:
		return model.PeriodMonthly
	case Quarter:
		return model.PeriodQuarterly
	case Year:
		return model.PeriodYearly
	default:
		return model.PeriodDaily
	}
}

type Window struct {
	Kind  Kind
	Start time.Time
	End   time.Time
}

func (w Window) Period() model.Period {
	return model.Period{Start: w.Start, End: w.End}
}

// Today is the day window: local midnight converted to UTC, plus one day.
func Today(now time.Time) Window {
	return Of(Day, now)
}

// Of returns the window of the given kind that contains now. Week, month,
// quarter and year boundaries follow now's local calendar; the day window is
// always exactly 24 hours from local midnight.
func Of(kind Kind, now time.Time) Window {
	loc := now.Location()
	y, m, d := now.Date()
	var start, end time.Time
	switch kind {
	case Week:
		// time.Weekday has Sunday = 0; shift so Monday starts the week.
		offset := (int(now.Weekday()) + 6) % 7
		start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 7)
	case Month:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	case Quarter:
		qm := time.Month(((int(m)-1)/3)*3 + 1)
		start = time.Date(y, qm, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 3, 0)
	case Year:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default:
		kind = Day
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		end = start.Add(24 * time.Hour)
	}
	return Window{Kind: kind, Start: start.UTC(), End: end.UTC()}
}
