package model

import "github.com/shopspring/decimal"

// AccountType classifies where money sits.
type AccountType string

const (
	AccountTypeCash   AccountType = "cash"
	AccountTypeBank   AccountType = "bank"
	AccountTypeBkash  AccountType = "bkash"
	AccountTypeCustom AccountType = "custom"
)

// Account is a place transactions are recorded against. Balance is stored
// but not derived from transactions; it is carried as written.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}
