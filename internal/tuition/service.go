// Package tuition tracks students and their per-day class attendance.
// Attendance is sparse: a day with no explicit mark has no record, and the
// (student, date) pair is the natural key kept unique by upsert.
package tuition

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/activitylog"
	"github.com/timeline-dev/timeline/internal/id"
	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/store"
	"github.com/timeline-dev/timeline/internal/validate"
)

// Service provides student and class-record mutations over the store.
type Service struct {
	store    *store.Store
	activity *activitylog.Recorder
}

// NewService creates a tuition Service.
func NewService(st *store.Store, activity *activitylog.Recorder) *Service {
	return &Service{store: st, activity: activity}
}

// StudentParams holds the caller-supplied fields for a new student.
type StudentParams struct {
	Name         string          `json:"name" validate:"required,notblank"`
	Subject      string          `json:"subject" validate:"required,notblank"`
	RatePerClass decimal.Decimal `json:"ratePerClass"`
}

// AddStudent validates params, assigns an id and creation time, and persists
// the grown collection. Nothing is written when validation fails.
func (s *Service) AddStudent(params StudentParams) (model.Student, error) {
	if err := validate.Struct(params); err != nil {
		return model.Student{}, err
	}
	if params.RatePerClass.IsNegative() {
		return model.Student{}, errors.New("rate per class must not be negative")
	}

	student := model.Student{
		ID:           id.New(),
		Name:         params.Name,
		Subject:      params.Subject,
		RatePerClass: params.RatePerClass,
		CreatedAt:    time.Now(),
	}
	students := append(s.Students(), student)
	if err := store.Save(s.store, store.Students, students); err != nil {
		return model.Student{}, err
	}
	s.activity.Record("students", "create", student.ID,
		fmt.Sprintf("Added student %s (%s)", student.Name, student.Subject))
	return student, nil
}

// Students returns the full student collection.
func (s *Service) Students() []model.Student {
	return store.Load[model.Student](s.store, store.Students, nil)
}

// Student looks up one student by id.
func (s *Service) Student(studentID string) (model.Student, bool) {
	for _, st := range s.Students() {
		if st.ID == studentID {
			return st, true
		}
	}
	return model.Student{}, false
}

// Records returns the full class-record collection.
func (s *Service) Records() []model.ClassRecord {
	return store.Load[model.ClassRecord](s.store, store.ClassRecords, nil)
}

// MarkParams holds an attendance decision for one student-day.
type MarkParams struct {
	StudentID string             `json:"studentId" validate:"required,notblank"`
	Date      string             `json:"date" validate:"required,datetime=2006-01-02"`
	Status    model.RecordStatus `json:"status" validate:"required,oneof=taken absent pending"`
}

// MarkAttendance upserts the record for (StudentID, Date) and sets its
// status. Any transition between statuses is allowed.
func (s *Service) MarkAttendance(params MarkParams) (model.ClassRecord, error) {
	if err := validate.Struct(params); err != nil {
		return model.ClassRecord{}, err
	}
	return s.upsert(params.StudentID, params.Date, func(rec *model.ClassRecord) {
		rec.Status = params.Status
	})
}

// CommentParams attaches a comment to one student-day.
type CommentParams struct {
	StudentID string `json:"studentId" validate:"required,notblank"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Comment   string `json:"comment" validate:"required,notblank"`
}

// AttachComment upserts the record for (StudentID, Date) and sets its
// comment. A freshly inserted record has status pending: a comment alone is
// not an attendance decision.
func (s *Service) AttachComment(params CommentParams) (model.ClassRecord, error) {
	if err := validate.Struct(params); err != nil {
		return model.ClassRecord{}, err
	}
	return s.upsert(params.StudentID, params.Date, func(rec *model.ClassRecord) {
		rec.Comment = params.Comment
	})
}

type naturalKey struct {
	studentID string
	date      string
}

// upsert merges apply into the existing record for the natural key, or
// inserts a fresh pending record when none exists, then persists the whole
// collection. The index keeps the pair unique.
func (s *Service) upsert(studentID, date string, apply func(*model.ClassRecord)) (model.ClassRecord, error) {
	records := s.Records()

	index := make(map[naturalKey]int, len(records))
	for i, r := range records {
		index[naturalKey{r.StudentID, r.Date}] = i
	}

	action := "update"
	var rec model.ClassRecord
	if i, ok := index[naturalKey{studentID, date}]; ok {
		apply(&records[i])
		rec = records[i]
	} else {
		action = "create"
		rec = model.ClassRecord{
			ID:        id.New(),
			StudentID: studentID,
			Date:      date,
			Status:    model.StatusPending,
		}
		apply(&rec)
		records = append(records, rec)
	}

	if err := store.Save(s.store, store.ClassRecords, records); err != nil {
		return model.ClassRecord{}, err
	}
	s.activity.Record("class-records", action, rec.ID,
		fmt.Sprintf("%s on %s: %s", studentID, date, rec.Status))
	return rec, nil
}
