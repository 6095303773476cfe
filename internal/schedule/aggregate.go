package schedule

import (
	"sort"
	"time"

	"github.com/timeline-dev/timeline/internal/model"
)

// SortWorks orders tasks for display: incomplete before complete, then by
// date and time ascending. The input is left untouched.
func SortWorks(works []model.ScheduledWork) []model.ScheduledWork {
	sorted := append([]model.ScheduledWork(nil), works...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	return sorted
}

// Partition groups tasks relative to a calendar day.
type Partition struct {
	Today    []model.ScheduledWork
	Upcoming []model.ScheduledWork // dated after today
	Overdue  []model.ScheduledWork // dated before today and not completed
}

// PartitionWorks splits sorted tasks around now's calendar day. Dates are
// canonical strings, so the comparison is lexicographic.
func PartitionWorks(works []model.ScheduledWork, now time.Time) Partition {
	today := now.Format(model.DateFormat)

	var p Partition
	for _, w := range SortWorks(works) {
		switch {
		case w.Date == today:
			p.Today = append(p.Today, w)
		case w.Date > today:
			p.Upcoming = append(p.Upcoming, w)
		case !w.Completed:
			p.Overdue = append(p.Overdue, w)
		}
	}
	return p
}

// Pending counts tasks not yet completed.
func Pending(works []model.ScheduledWork) int {
	n := 0
	for _, w := range works {
		if !w.Completed {
			n++
		}
	}
	return n
}

// NextUp returns the first limit incomplete tasks in date order, for the
// dashboard preview.
func NextUp(works []model.ScheduledWork, limit int) []model.ScheduledWork {
	var pending []model.ScheduledWork
	for _, w := range works {
		if !w.Completed {
			pending = append(pending, w)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Date < pending[j].Date
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}
