package model

import "github.com/shopspring/decimal"

// TransactionType classifies a money movement.
type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxSpending   TransactionType = "spending"
)

// Transaction is one recorded money movement. It references an Account but
// never changes its balance. Category is only meaningful for spending.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"accountId"`
	Category  string          `json:"category,omitempty"`
	Comment   string          `json:"comment,omitempty"`
	Date      string          `json:"date"`           // DateFormat
	Time      string          `json:"time,omitempty"` // TimeFormat
}
