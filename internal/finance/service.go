// Package finance records money movements against accounts and derives
// period totals from them. Transactions reference accounts but never change
// an account's stored balance.
package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/activitylog"
	"github.com/timeline-dev/timeline/internal/id"
	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/store"
	"github.com/timeline-dev/timeline/internal/validate"
)

// Service provides account lookup and transaction mutations over the store.
type Service struct {
	store    *store.Store
	activity *activitylog.Recorder
}

// NewService creates a finance Service.
func NewService(st *store.Store, activity *activitylog.Recorder) *Service {
	return &Service{store: st, activity: activity}
}

// Accounts returns the account collection, seeded with the defaults when
// nothing has been stored yet.
func (s *Service) Accounts() []model.Account {
	return store.Load(s.store, store.Accounts, DefaultAccounts())
}

// Account looks up one account by id.
func (s *Service) Account(accountID string) (model.Account, bool) {
	for _, a := range s.Accounts() {
		if a.ID == accountID {
			return a, true
		}
	}
	return model.Account{}, false
}

// SeedAccounts persists the default accounts if the collection is absent.
// Called once at init so the store always has the three starter accounts.
func (s *Service) SeedAccounts() error {
	var existing []model.Account
	if s.store.Get(store.Accounts, &existing) {
		return nil
	}
	return store.Save(s.store, store.Accounts, DefaultAccounts())
}

// AddAccountParams holds the fields for a user-defined account.
type AddAccountParams struct {
	Name string `json:"name" validate:"required,notblank"`
}

// AddAccount appends a custom account with a zero balance.
func (s *Service) AddAccount(params AddAccountParams) (model.Account, error) {
	if err := validate.Struct(params); err != nil {
		return model.Account{}, err
	}

	account := model.Account{
		ID:      id.New(),
		Name:    params.Name,
		Type:    model.AccountTypeCustom,
		Balance: decimal.Zero,
	}
	accounts := append(s.Accounts(), account)
	if err := store.Save(s.store, store.Accounts, accounts); err != nil {
		return model.Account{}, err
	}
	s.activity.Record("accounts", "create", account.ID, "Added account "+account.Name)
	return account, nil
}

// TxParams holds the caller-supplied fields for a new transaction.
// Category is only meaningful when Type is spending.
type TxParams struct {
	Type      model.TransactionType `json:"type" validate:"required,oneof=deposit withdrawal spending"`
	Amount    decimal.Decimal       `json:"amount"`
	AccountID string                `json:"accountId" validate:"required,notblank"`
	Category  string                `json:"category"`
	Comment   string                `json:"comment"`
	Date      string                `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string                `json:"time" validate:"omitempty,datetime=15:04"`
}

// AddTransaction validates params, assigns an id and persists the grown
// collection. The referenced account's balance is left untouched.
func (s *Service) AddTransaction(params TxParams) (model.Transaction, error) {
	if err := validate.Struct(params); err != nil {
		return model.Transaction{}, err
	}
	if !params.Amount.IsPositive() {
		return model.Transaction{}, errors.New("amount must be a positive number")
	}

	tx := model.Transaction{
		ID:        id.New(),
		Type:      params.Type,
		Amount:    params.Amount,
		AccountID: params.AccountID,
		Category:  params.Category,
		Comment:   params.Comment,
		Date:      params.Date,
		Time:      params.Time,
	}
	txs := append(s.Transactions(), tx)
	if err := store.Save(s.store, store.Transactions, txs); err != nil {
		return model.Transaction{}, err
	}
	s.activity.Record("transactions", "create", tx.ID,
		fmt.Sprintf("%s %s on %s", tx.Type, tx.Amount.StringFixed(2), tx.Date))
	return tx, nil
}

// Transactions returns the full transaction collection.
func (s *Service) Transactions() []model.Transaction {
	return store.Load[model.Transaction](s.store, store.Transactions, nil)
}
