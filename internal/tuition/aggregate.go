package tuition

import (
	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/period"
)

// ClassesTaken counts records marked taken inside the window.
func ClassesTaken(records []model.ClassRecord, w period.Window) int {
	n := 0
	for _, r := range records {
		if r.Status == model.StatusTaken && w.Contains(r.Date) {
			n++
		}
	}
	return n
}

// Earnings sums the owning student's per-class rate over every taken record
// in the window. Earnings are never stored; they are always derived here. A
// record whose student no longer exists contributes zero.
func Earnings(students []model.Student, records []model.ClassRecord, w period.Window) decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(students))
	for _, st := range students {
		rates[st.ID] = st.RatePerClass
	}

	total := decimal.Zero
	for _, r := range records {
		if r.Status != model.StatusTaken || !w.Contains(r.Date) {
			continue
		}
		if rate, ok := rates[r.StudentID]; ok {
			total = total.Add(rate)
		}
	}
	return total
}

// StudentTotals reports one student's lifetime taken and absent counts and
// the earnings implied by the taken count.
func StudentTotals(student model.Student, records []model.ClassRecord) (taken, absent int, earnings decimal.Decimal) {
	for _, r := range records {
		if r.StudentID != student.ID {
			continue
		}
		switch r.Status {
		case model.StatusTaken:
			taken++
		case model.StatusAbsent:
			absent++
		}
	}
	earnings = student.RatePerClass.Mul(decimal.NewFromInt(int64(taken)))
	return taken, absent, earnings
}

// RecordsByDate indexes one student's records by date, for rendering a week
// of attendance.
func RecordsByDate(records []model.ClassRecord, studentID string) map[string]model.ClassRecord {
	byDate := make(map[string]model.ClassRecord)
	for _, r := range records {
		if r.StudentID == studentID {
			byDate[r.Date] = r
		}
	}
	return byDate
}
