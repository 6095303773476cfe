package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student is a tuition student. A student owns zero or more ClassRecords
// referencing it by ID.
type Student struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Subject      string          `json:"subject"`
	RatePerClass decimal.Decimal `json:"ratePerClass"`
	CreatedAt    time.Time       `json:"createdAt"`
}
