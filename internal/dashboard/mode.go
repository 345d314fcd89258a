package dashboard

import "dial-cli/internal/period"

// Mode selects what the body of the dashboard shows.
type Mode int

const (
	ModeToday Mode = iota
	ModeThisWeek
	ModeThisMonth
	ModeThisQuarter
	ModeThisYear
	ModeExecutionStats
	ModeCustomTime
	ModeGlobalTree

	modeCount = int(ModeGlobalTree) + 1
)

// DefaultMode is the mode a new dashboard starts in.
const DefaultMode = ModeGlobalTree

// Modes lists the ring in order, as shown in the nav bar.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Next advances the ring; the last mode wraps to the first.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % modeCount)
}

func (m Mode) Title() string {
	switch m {
	case ModeToday:
		return "Today"
	case ModeThisWeek:
		return "This Week"
	case ModeThisMonth:
		return "This Month"
	case ModeThisQuarter:
		return "This Quarter"
	case ModeThisYear:
		return "This Year"
	case ModeExecutionStats:
		return "Execution Stats"
	case ModeCustomTime:
		return "Custom Time"
	case ModeGlobalTree:
		return "Global Tree"
	default:
		return "Unknown"
	}
}

func (m Mode) String() string { return m.Title() }

// ShowsTree reports whether the mode renders the task outline. The other
// modes render a placeholder.
func (m Mode) ShowsTree() bool {
	return m == ModeToday || m == ModeGlobalTree
}

// PeriodKind returns the request window for modes that correspond to one.
func (m Mode) PeriodKind() (period.Kind, bool) {
	switch m {
	case ModeToday:
		return period.Day, true
	case ModeThisWeek:
		return period.Week, true
	case ModeThisMonth:
		return period.Month, true
	case ModeThisQuarter:
		return period.Quarter, true
	case ModeThisYear:
		return period.Year, true
	default:
		return "", false
	}
}
