package finance

import (
	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/model"
)

// DefaultAccounts returns the seed accounts used whenever the accounts
// collection is absent: Cash, Bank and bKash, each with a zero balance.
func DefaultAccounts() []model.Account {
	return []model.Account{
		{ID: "cash", Name: "Cash", Type: model.AccountTypeCash, Balance: decimal.Zero},
		{ID: "bank", Name: "Bank", Type: model.AccountTypeBank, Balance: decimal.Zero},
		{ID: "bkash", Name: "bKash", Type: model.AccountTypeBkash, Balance: decimal.Zero},
	}
}
