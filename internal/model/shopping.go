package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Priority orders shopping items for display; high sorts before medium
// before low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort rank of a priority, lowest first for high.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// ShoppingItem is one thing to buy. Bought starts false and is toggled
// independently.
type ShoppingItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ExpectedPrice decimal.Decimal `json:"expectedPrice"`
	Priority      Priority        `json:"priority"`
	Comment       string          `json:"comment,omitempty"`
	Bought        bool            `json:"bought"`
	CreatedAt     time.Time       `json:"createdAt"`
}
