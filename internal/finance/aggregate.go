package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/period"
)

// Filter returns the transactions inside the window, newest date first.
// An empty txType keeps every type.
func Filter(txs []model.Transaction, w period.Window, txType model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if !w.Contains(tx.Date) {
			continue
		}
		if txType != "" && tx.Type != txType {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Totals holds per-type sums over a window.
type Totals struct {
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	Spending    decimal.Decimal
}

// Net is deposits minus withdrawals minus spending.
func (t Totals) Net() decimal.Decimal {
	return t.Deposits.Sub(t.Withdrawals).Sub(t.Spending)
}

// Sum computes the per-type totals over the window.
func Sum(txs []model.Transaction, w period.Window) Totals {
	t := Totals{
		Deposits:    decimal.Zero,
		Withdrawals: decimal.Zero,
		Spending:    decimal.Zero,
	}
	for _, tx := range txs {
		if !w.Contains(tx.Date) {
			continue
		}
		switch tx.Type {
		case model.TxDeposit:
			t.Deposits = t.Deposits.Add(tx.Amount)
		case model.TxWithdrawal:
			t.Withdrawals = t.Withdrawals.Add(tx.Amount)
		case model.TxSpending:
			t.Spending = t.Spending.Add(tx.Amount)
		}
	}
	return t
}

// AccountName resolves an account id for display. A dangling reference
// renders as "Unknown" rather than failing.
func AccountName(accounts []model.Account, accountID string) string {
	for _, a := range accounts {
		if a.ID == accountID {
			return a.Name
		}
	}
	return "Unknown"
}
