package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindow_StartsMostRecentSunday(t *testing.T) {
	// 2025-06-18 is a Wednesday; the week began Sunday 2025-06-15.
	now := time.Date(2025, 6, 18, 14, 30, 0, 0, time.Local)
	w := WeekWindow(now)
	assert.Equal(t, "2025-06-15", w.Start)
	assert.Equal(t, "2025-06-22", w.End)
}

func TestWeekWindow_SundayIsItsOwnStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	w := WeekWindow(now)
	assert.Equal(t, "2025-06-15", w.Start)
}

func TestWindow_BoundaryDates(t *testing.T) {
	w := Window{Start: "2025-06-15", End: "2025-06-22"}
	assert.True(t, w.Contains("2025-06-15"), "start boundary is inside")
	assert.True(t, w.Contains("2025-06-21"))
	assert.False(t, w.Contains("2025-06-22"), "end boundary is outside")
	assert.False(t, w.Contains("2025-06-14"))
}

func TestDayWindow(t *testing.T) {
	now := time.Date(2025, 6, 18, 23, 59, 0, 0, time.Local)
	w := DayWindow(now)
	assert.Equal(t, "2025-06-18", w.Start)
	assert.Equal(t, "2025-06-19", w.End)
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2025, 2, 14, 9, 0, 0, 0, time.Local)
	w := MonthWindow(now)
	assert.Equal(t, "2025-02-01", w.Start)
	assert.Equal(t, "2025-03-01", w.End)
	assert.True(t, w.Contains("2025-02-01"))
	assert.False(t, w.Contains("2025-03-01"))
}

func TestMonthWindow_YearRollover(t *testing.T) {
	now := time.Date(2025, 12, 31, 12, 0, 0, 0, time.Local)
	w := MonthWindow(now)
	assert.Equal(t, "2025-12-01", w.Start)
	assert.Equal(t, "2026-01-01", w.End)
}

func TestParse(t *testing.T) {
	for _, name := range []string{"day", "week", "month"} {
		p, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, Period(name), p)
	}
	_, err := Parse("year")
	assert.Error(t, err)
}
