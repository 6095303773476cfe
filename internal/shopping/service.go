// Package shopping manages the list of things to buy.
package shopping

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

// Service provides shopping-item mutations over the store.
type Service struct {
	store    *store.Store
	activity *activitylog.Recorder
}

// NewService creates a shopping Service.
func NewService(st *store.Store, activity *activitylog.Recorder) *Service {
	return &Service{store: st, activity: activity}
}

// ItemParams holds the caller-supplied fields for a new item. ExpectedPrice
// is optional; ParsePrice maps absent or unparsable input to zero.
type ItemParams struct {
	Name          string          `json:"name" validate:"required,notblank"`
	ExpectedPrice decimal.Decimal `json:"expectedPrice"`
	Priority      model.Priority  `json:"priority" validate:"required,oneof=low medium high"`
	Comment       string          `json:"comment"`
}

// ParsePrice converts optional user price input; empty or unparsable input
// degrades to zero since the field is optional.
func ParsePrice(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// AddItem validates params and persists a new item with Bought false.
func (s *Service) AddItem(params ItemParams) (model.ShoppingItem, error) {
	if err := validate.Struct(params); err != nil {
		return model.ShoppingItem{}, err
	}
	if params.ExpectedPrice.IsNegative() {
		return model.ShoppingItem{}, errors.New("expected price must not be negative")
	}

	item := model.ShoppingItem{
		ID:            id.New(),
		Name:          params.Name,
		ExpectedPrice: params.ExpectedPrice,
		Priority:      params.Priority,
		Comment:       params.Comment,
		Bought:        false,
		CreatedAt:     time.Now(),
	}
	items := append(s.Items(), item)
	if err := store.Save(s.store, store.ShoppingItems, items); err != nil {
		return model.ShoppingItem{}, err
	}
	s.activity.Record("shopping-items", "create", item.ID,
		fmt.Sprintf("Added item %q (%s priority)", item.Name, item.Priority))
	return item, nil
}

// Items returns the full shopping collection.
func (s *Service) Items() []model.ShoppingItem {
	return store.Load[model.ShoppingItem](s.store, store.ShoppingItems, nil)
}

// ToggleBought flips the bought flag of one item.
func (s *Service) ToggleBought(itemID string) (model.ShoppingItem, error) {
	items := s.Items()
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		items[i].Bought = !items[i].Bought
		if err := store.Save(s.store, store.ShoppingItems, items); err != nil {
			return model.ShoppingItem{}, err
		}
		s.activity.Record("shopping-items", "toggle", itemID,
			fmt.Sprintf("bought=%t", items[i].Bought))
		return items[i], nil
	}
	return model.ShoppingItem{}, fmt.Errorf("no item with id %s", itemID)
}

// Delete removes one item by id.
func (s *Service) Delete(itemID string) error {
	items := s.Items()
	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("no item with id %s", itemID)
	}
	if err := store.Save(s.store, store.ShoppingItems, kept); err != nil {
		return err
	}
	s.activity.Record("shopping-items", "delete", itemID, "")
	return nil
}
