package store

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeline-dev/timeline/internal/model"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s, err := Open(filepath.Join(t.TempDir(), "timeline.db"), "timeline", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_AbsentKeyReturnsFalse(t *testing.T) {
	s := openTest(t)
	var got []model.Student
	assert.False(t, s.Get(Students, &got))
	assert.Nil(t, got)
}

func TestSetThenGet_RoundTrips(t *testing.T) {
	s := openTest(t)
	in := []model.ScheduledWork{
		{ID: "a", Title: "Pay rent", Date: "2025-06-01", Time: "09:00", ReminderType: model.ReminderNotification},
	}
	require.NoError(t, s.Set(ScheduledWorks, in))

	var out []model.ScheduledWork
	require.True(t, s.Get(ScheduledWorks, &out))
	assert.Equal(t, in, out)
}

func TestGet_MalformedValueFallsBack(t *testing.T) {
	s := openTest(t)
	// Store something that is not an array of tasks.
	require.NoError(t, s.Set(ScheduledWorks, "not an array"))

	var out []model.ScheduledWork
	assert.False(t, s.Get(ScheduledWorks, &out))
	assert.Nil(t, out)
}

func TestLoad_DefaultWhenAbsent(t *testing.T) {
	s := openTest(t)
	def := []model.Account{{ID: "cash", Name: "Cash", Type: model.AccountTypeCash}}
	got := Load(s, Accounts, def)
	assert.Equal(t, def, got)
}

func TestSave_NilBecomesEmptyArray(t *testing.T) {
	s := openTest(t)
	require.NoError(t, Save[model.Note](s, Notes, nil))

	def := []model.Note{{ID: "sentinel"}}
	got := Load(s, Notes, def)
	assert.Empty(t, got, "stored empty array must win over the default")
}

func TestNamespacesAreIsolated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.db")

	a, err := Open(path, "alpha", nil)
	require.NoError(t, err)
	require.NoError(t, a.Set(Notes, []model.Note{{ID: "n1", Type: model.NoteQuick, Title: "hi"}}))
	require.NoError(t, a.Close())

	b, err := Open(path, "beta", nil)
	require.NoError(t, err)
	defer b.Close()
	var out []model.Note
	assert.False(t, b.Get(Notes, &out))
}
