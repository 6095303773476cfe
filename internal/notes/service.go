// Package notes manages typed notes. Each note type carries its own field
// subset, so the only way to create a note is through its type's
// constructor; no other combination of fields can be persisted.
package notes

import (
	"fmt"
	"sort"
	"time"

	"github.com/timeline-dev/timeline/internal/activitylog"
	"github.com/timeline-dev/timeline/internal/id"
	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/store"
	"github.com/timeline-dev/timeline/internal/validate"
)

// Service provides note mutations over the store.
type Service struct {
	store    *store.Store
	activity *activitylog.Recorder
}

// NewService creates a notes Service.
func NewService(st *store.Store, activity *activitylog.Recorder) *Service {
	return &Service{store: st, activity: activity}
}

// QuickParams is a free-form note: a title plus optional body text.
type QuickParams struct {
	Title   string `json:"title" validate:"required,notblank"`
	Content string `json:"content"`
}

// AddQuick persists a quick note.
func (s *Service) AddQuick(params QuickParams) (model.Note, error) {
	if err := validate.Struct(params); err != nil {
		return model.Note{}, err
	}
	return s.append(model.Note{
		Type:    model.NoteQuick,
		Title:   params.Title,
		Content: params.Content,
	})
}

// ExamParams is an exam reminder: subject and date are required, the clock
// time and location are not.
type ExamParams struct {
	Title    string `json:"title" validate:"required,notblank"`
	Subject  string `json:"subject" validate:"required,notblank"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"omitempty,datetime=15:04"`
	Location string `json:"location"`
}

// AddExam persists an exam note.
func (s *Service) AddExam(params ExamParams) (model.Note, error) {
	if err := validate.Struct(params); err != nil {
		return model.Note{}, err
	}
	return s.append(model.Note{
		Type:     model.NoteExam,
		Title:    params.Title,
		Subject:  params.Subject,
		Date:     params.Date,
		Time:     params.Time,
		Location: params.Location,
	})
}

// ClassParams is a recurring class note keyed to a day of the week.
type ClassParams struct {
	Title     string `json:"title" validate:"required,notblank"`
	Subject   string `json:"subject" validate:"required,notblank"`
	DayOfWeek string `json:"dayOfWeek" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	Time      string `json:"time" validate:"omitempty,datetime=15:04"`
	Location  string `json:"location"`
}

// AddClass persists a class note.
func (s *Service) AddClass(params ClassParams) (model.Note, error) {
	if err := validate.Struct(params); err != nil {
		return model.Note{}, err
	}
	return s.append(model.Note{
		Type:      model.NoteClass,
		Title:     params.Title,
		Subject:   params.Subject,
		DayOfWeek: params.DayOfWeek,
		Time:      params.Time,
		Location:  params.Location,
	})
}

func (s *Service) append(note model.Note) (model.Note, error) {
	note.ID = id.New()
	note.CreatedAt = time.Now()

	all := append(s.Notes(), note)
	if err := store.Save(s.store, store.Notes, all); err != nil {
		return model.Note{}, err
	}
	s.activity.Record("notes", "create", note.ID,
		fmt.Sprintf("Added %s note %q", note.Type, note.Title))
	return note, nil
}

// Notes returns the full note collection.
func (s *Service) Notes() []model.Note {
	return store.Load[model.Note](s.store, store.Notes, nil)
}

// ByType returns notes of one type, newest first.
func (s *Service) ByType(noteType model.NoteType) []model.Note {
	var out []model.Note
	for _, n := range s.Notes() {
		if n.Type == noteType {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes one note by id.
func (s *Service) Delete(noteID string) error {
	all := s.Notes()
	kept := all[:0]
	for _, n := range all {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("no note with id %s", noteID)
	}
	if err := store.Save(s.store, store.Notes, kept); err != nil {
		return err
	}
	s.activity.Record("notes", "delete", noteID, "")
	return nil
}
