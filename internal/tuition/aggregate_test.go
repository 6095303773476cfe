package tuition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/period"
)

var thisWeek = period.Window{Start: "2025-06-15", End: "2025-06-22"}

func TestEarnings_JoinsRecordsToStudents(t *testing.T) {
	students := []model.Student{
		{ID: "a", Name: "A", RatePerClass: dec("500")},
		{ID: "b", Name: "B", RatePerClass: dec("300")},
	}
	records := []model.ClassRecord{
		{ID: "1", StudentID: "a", Date: "2025-06-16", Status: model.StatusTaken},
		{ID: "2", StudentID: "a", Date: "2025-06-17", Status: model.StatusTaken},
		{ID: "3", StudentID: "b", Date: "2025-06-17", Status: model.StatusAbsent},
	}

	got := Earnings(students, records, thisWeek)
	assert.True(t, got.Equal(dec("1000")), "absent contributes 0, each taken contributes its own rate; got %s", got)
}

func TestEarnings_DanglingStudentContributesZero(t *testing.T) {
	students := []model.Student{{ID: "a", RatePerClass: dec("500")}}
	records := []model.ClassRecord{
		{ID: "1", StudentID: "a", Date: "2025-06-16", Status: model.StatusTaken},
		{ID: "2", StudentID: "deleted", Date: "2025-06-16", Status: model.StatusTaken},
	}

	got := Earnings(students, records, thisWeek)
	assert.True(t, got.Equal(dec("500")), "got %s", got)
}

func TestEarnings_WindowBoundaries(t *testing.T) {
	students := []model.Student{{ID: "a", RatePerClass: dec("100")}}
	records := []model.ClassRecord{
		{ID: "1", StudentID: "a", Date: "2025-06-14", Status: model.StatusTaken}, // before the week
		{ID: "2", StudentID: "a", Date: "2025-06-15", Status: model.StatusTaken}, // start boundary, included
		{ID: "3", StudentID: "a", Date: "2025-06-21", Status: model.StatusTaken},
		{ID: "4", StudentID: "a", Date: "2025-06-22", Status: model.StatusTaken}, // next week
	}

	got := Earnings(students, records, thisWeek)
	assert.True(t, got.Equal(dec("200")), "got %s", got)
}

func TestClassesTaken(t *testing.T) {
	records := []model.ClassRecord{
		{ID: "1", StudentID: "a", Date: "2025-06-15", Status: model.StatusTaken},
		{ID: "2", StudentID: "a", Date: "2025-06-16", Status: model.StatusPending},
		{ID: "3", StudentID: "b", Date: "2025-06-17", Status: model.StatusTaken},
		{ID: "4", StudentID: "b", Date: "2025-06-08", Status: model.StatusTaken}, // last week
	}
	assert.Equal(t, 2, ClassesTaken(records, thisWeek))
}

func TestStudentTotals(t *testing.T) {
	student := model.Student{ID: "a", RatePerClass: dec("250")}
	records := []model.ClassRecord{
		{ID: "1", StudentID: "a", Date: "2025-05-05", Status: model.StatusTaken},
		{ID: "2", StudentID: "a", Date: "2025-05-06", Status: model.StatusTaken},
		{ID: "3", StudentID: "a", Date: "2025-05-07", Status: model.StatusAbsent},
		{ID: "4", StudentID: "a", Date: "2025-05-08", Status: model.StatusPending},
		{ID: "5", StudentID: "other", Date: "2025-05-05", Status: model.StatusTaken},
	}

	taken, absent, earnings := StudentTotals(student, records)
	assert.Equal(t, 2, taken)
	assert.Equal(t, 1, absent)
	assert.True(t, earnings.Equal(dec("500")), "got %s", earnings)
}

func TestRecordsByDate(t *testing.T) {
	records := []model.ClassRecord{
		{ID: "1", StudentID: "a", Date: "2025-06-16", Status: model.StatusTaken},
		{ID: "2", StudentID: "b", Date: "2025-06-16", Status: model.StatusAbsent},
		{ID: "3", StudentID: "a", Date: "2025-06-17", Status: model.StatusPending},
	}

	byDate := RecordsByDate(records, "a")
	assert.Len(t, byDate, 2)
	assert.Equal(t, "1", byDate["2025-06-16"].ID)
	assert.Equal(t, "3", byDate["2025-06-17"].ID)
}
