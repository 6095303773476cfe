// Package schedule manages dated tasks with a completed flag.
package schedule

import (
	"fmt"

	"github.com/timeline-dev/timeline/internal/activitylog"
	"github.com/timeline-dev/timeline/internal/id"
	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/store"
	"github.com/timeline-dev/timeline/internal/validate"
)

// Service provides scheduled-work mutations over the store.
type Service struct {
	store    *store.Store
	activity *activitylog.Recorder
}

// NewService creates a schedule Service.
func NewService(st *store.Store, activity *activitylog.Recorder) *Service {
	return &Service{store: st, activity: activity}
}

// WorkParams holds the caller-supplied fields for a new task.
type WorkParams struct {
	Title        string             `json:"title" validate:"required,notblank"`
	Description  string             `json:"description"`
	Date         string             `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string             `json:"time" validate:"required,datetime=15:04"`
	ReminderType model.ReminderType `json:"reminderType" validate:"required,oneof=notification alarm"`
}

// AddWork validates params and persists a new task with Completed false.
func (s *Service) AddWork(params WorkParams) (model.ScheduledWork, error) {
	if err := validate.Struct(params); err != nil {
		return model.ScheduledWork{}, err
	}

	work := model.ScheduledWork{
		ID:           id.New(),
		Title:        params.Title,
		Description:  params.Description,
		Date:         params.Date,
		Time:         params.Time,
		ReminderType: params.ReminderType,
		Completed:    false,
	}
	works := append(s.Works(), work)
	if err := store.Save(s.store, store.ScheduledWorks, works); err != nil {
		return model.ScheduledWork{}, err
	}
	s.activity.Record("scheduled-works", "create", work.ID,
		fmt.Sprintf("Added task %q for %s %s", work.Title, work.Date, work.Time))
	return work, nil
}

// Works returns the full task collection.
func (s *Service) Works() []model.ScheduledWork {
	return store.Load[model.ScheduledWork](s.store, store.ScheduledWorks, nil)
}

// ToggleComplete flips the completed flag of one task.
func (s *Service) ToggleComplete(workID string) (model.ScheduledWork, error) {
	works := s.Works()
	for i := range works {
		if works[i].ID != workID {
			continue
		}
		works[i].Completed = !works[i].Completed
		if err := store.Save(s.store, store.ScheduledWorks, works); err != nil {
			return model.ScheduledWork{}, err
		}
		s.activity.Record("scheduled-works", "toggle", workID,
			fmt.Sprintf("completed=%t", works[i].Completed))
		return works[i], nil
	}
	return model.ScheduledWork{}, fmt.Errorf("no task with id %s", workID)
}

// Delete removes one task by id.
func (s *Service) Delete(workID string) error {
	works := s.Works()
	kept := works[:0]
	for _, w := range works {
		if w.ID != workID {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(works) {
		return fmt.Errorf("no task with id %s", workID)
	}
	if err := store.Save(s.store, store.ScheduledWorks, kept); err != nil {
		return err
	}
	s.activity.Record("scheduled-works", "delete", workID, "")
	return nil
}
