// Package importer reads transactions from CSV files so a ledger kept
// elsewhere can be pulled into the tracker in one go.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/finance"
	"github.com/timeline-dev/timeline/internal/model"
)

// Header is the expected CSV header.
const Header = "date,type,amount,account,category,comment"

const (
	numFields   = 6
	colDate     = 0
	colType     = 1
	colAmount   = 2
	colAccount  = 3
	colCategory = 4
	colComment  = 5
)

// RowError reports one unimportable row. Good rows around it still import.
type RowError struct {
	Row int // 1-based CSV line number, 0 when unknown
	Err error
}

func (e RowError) Error() string {
	if e.Row == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Parse reads transaction params from a CSV. Malformed rows are collected
// as RowErrors rather than aborting the whole file.
func Parse(r io.Reader) ([]finance.TxParams, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil, nil
	}

	var params []finance.TxParams
	var rowErrs []RowError
	for i, rec := range records[1:] {
		p, err := parseRow(rec)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 2, Err: err})
			continue
		}
		params = append(params, p)
	}
	return params, rowErrs, nil
}

func parseRow(rec []string) (finance.TxParams, error) {
	if _, err := time.Parse(model.DateFormat, rec[colDate]); err != nil {
		return finance.TxParams{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return finance.TxParams{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	txType := model.TransactionType(rec[colType])
	switch txType {
	case model.TxDeposit, model.TxWithdrawal, model.TxSpending:
	default:
		return finance.TxParams{}, fmt.Errorf("unknown transaction type %q", rec[colType])
	}

	return finance.TxParams{
		Type:      txType,
		Amount:    amount,
		AccountID: rec[colAccount],
		Category:  rec[colCategory],
		Comment:   rec[colComment],
		Date:      rec[colDate],
	}, nil
}

// Import parses r and adds every good row through the finance service.
// Returns the imported transactions plus per-row errors (parse failures and
// service rejections alike).
func Import(svc *finance.Service, r io.Reader) ([]model.Transaction, []RowError, error) {
	params, rowErrs, err := Parse(r)
	if err != nil {
		return nil, nil, err
	}

	var imported []model.Transaction
	for _, p := range params {
		tx, err := svc.AddTransaction(p)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Err: fmt.Errorf("%s %s: %w", p.Date, p.Amount, err)})
			continue
		}
		imported = append(imported, tx)
	}
	return imported, rowErrs, nil
}
