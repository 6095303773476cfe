// Package period computes the half-open calendar windows that scope every
// aggregation: the current day, the current week (starting the most recent
// Sunday) and the current month.
package period

import (
	"fmt"
	"time"

	"github.com/timeline-dev/timeline/internal/model"
)

// Period names a window length.
type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

// Parse converts a user-supplied period name.
func Parse(s string) (Period, error) {
	switch Period(s) {
	case Day, Week, Month:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q (want day, week or month)", s)
}

// Window is a half-open [Start, End) interval of canonical dates. Because
// dates are canonical YYYY-MM-DD strings, containment is a plain string
// comparison.
type Window struct {
	Start string // inclusive
	End   string // exclusive
}

// Contains reports whether a canonical date falls inside the window. The
// Start date itself is inside; the End date is not.
func (w Window) Contains(date string) bool {
	return date >= w.Start && date < w.End
}

// DayWindow returns the window covering now's calendar day.
func DayWindow(now time.Time) Window {
	return Window{
		Start: now.Format(model.DateFormat),
		End:   now.AddDate(0, 0, 1).Format(model.DateFormat),
	}
}

// WeekWindow returns the window starting the most recent Sunday at local
// midnight and ending seven days later.
func WeekWindow(now time.Time) Window {
	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	return Window{
		Start: sunday.Format(model.DateFormat),
		End:   sunday.AddDate(0, 0, 7).Format(model.DateFormat),
	}
}

// MonthWindow returns the window covering now's calendar month.
func MonthWindow(now time.Time) Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{
		Start: first.Format(model.DateFormat),
		End:   first.AddDate(0, 1, 0).Format(model.DateFormat),
	}
}

// WindowOf returns the window for a named period anchored at now.
func WindowOf(p Period, now time.Time) Window {
	switch p {
	case Day:
		return DayWindow(now)
	case Month:
		return MonthWindow(now)
	default:
		return WeekWindow(now)
	}
}
