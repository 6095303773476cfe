package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/period"
)

var week = period.Window{Start: "2025-06-15", End: "2025-06-22"}

func tx(txType model.TransactionType, amount, date string) model.Transaction {
	return model.Transaction{ID: amount + date, Type: txType, Amount: dec(amount), Date: date}
}

func TestSum_NetBalance(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TxDeposit, "500", "2025-06-16"),
		tx(model.TxDeposit, "300", "2025-06-17"),
		tx(model.TxWithdrawal, "100", "2025-06-17"),
		tx(model.TxSpending, "50", "2025-06-18"),
		tx(model.TxSpending, "20", "2025-06-19"),
	}

	totals := Sum(txs, week)
	assert.True(t, totals.Deposits.Equal(dec("800")))
	assert.True(t, totals.Withdrawals.Equal(dec("100")))
	assert.True(t, totals.Spending.Equal(dec("70")))
	assert.True(t, totals.Net().Equal(dec("630")), "got %s", totals.Net())
}

func TestSum_IgnoresOutsideWindow(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TxDeposit, "500", "2025-06-14"), // day before the week
		tx(model.TxDeposit, "300", "2025-06-15"), // boundary, included
		tx(model.TxDeposit, "200", "2025-06-22"), // next week
	}

	totals := Sum(txs, week)
	assert.True(t, totals.Deposits.Equal(dec("300")), "got %s", totals.Deposits)
}

func TestFilter_SortsNewestFirst(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TxSpending, "10", "2025-06-16"),
		tx(model.TxSpending, "20", "2025-06-19"),
		tx(model.TxSpending, "30", "2025-06-17"),
	}

	got := Filter(txs, week, "")
	require.Len(t, got, 3)
	assert.Equal(t, "2025-06-19", got[0].Date)
	assert.Equal(t, "2025-06-17", got[1].Date)
	assert.Equal(t, "2025-06-16", got[2].Date)
}

func TestFilter_ByType(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TxDeposit, "10", "2025-06-16"),
		tx(model.TxSpending, "20", "2025-06-16"),
	}

	got := Filter(txs, week, model.TxDeposit)
	require.Len(t, got, 1)
	assert.Equal(t, model.TxDeposit, got[0].Type)
}

func TestAccountName_DanglingShowsUnknown(t *testing.T) {
	accounts := DefaultAccounts()
	assert.Equal(t, "Cash", AccountName(accounts, "cash"))
	assert.Equal(t, "Unknown", AccountName(accounts, "deleted-account"))
}
