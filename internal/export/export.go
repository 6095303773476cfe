// Package export writes every collection to an xlsx workbook, one sheet per
// entity, so records can be inspected or backed up outside the tracker.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/timeline-dev/timeline/internal/model"
)

// Data is a snapshot of every collection.
type Data struct {
	Students       []model.Student
	ClassRecords   []model.ClassRecord
	Accounts       []model.Account
	Transactions   []model.Transaction
	ScheduledWorks []model.ScheduledWork
	ShoppingItems  []model.ShoppingItem
	Notes          []model.Note
}

// Workbook builds an xlsx workbook from a snapshot. The caller saves it.
func Workbook(data Data) (*excelize.File, error) {
	f := excelize.NewFile()

	sheets := []struct {
		name  string
		write func(*excelize.File, string) error
	}{
		{"Students", func(f *excelize.File, s string) error { return writeStudents(f, s, data.Students) }},
		{"Class Records", func(f *excelize.File, s string) error { return writeClassRecords(f, s, data.ClassRecords) }},
		{"Accounts", func(f *excelize.File, s string) error { return writeAccounts(f, s, data.Accounts) }},
		{"Transactions", func(f *excelize.File, s string) error { return writeTransactions(f, s, data.Transactions) }},
		{"Tasks", func(f *excelize.File, s string) error { return writeWorks(f, s, data.ScheduledWorks) }},
		{"Shopping", func(f *excelize.File, s string) error { return writeItems(f, s, data.ShoppingItems) }},
		{"Notes", func(f *excelize.File, s string) error { return writeNotes(f, s, data.Notes) }},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return nil, fmt.Errorf("renaming first sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, fmt.Errorf("creating sheet %s: %w", sheet.name, err)
			}
		}
		if err := sheet.write(f, sheet.name); err != nil {
			return nil, fmt.Errorf("writing sheet %s: %w", sheet.name, err)
		}
	}

	return f, nil
}

// Save builds the workbook and writes it to path.
func Save(path string, data Data) error {
	f, err := Workbook(data)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return f.Close()
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeStudents(f *excelize.File, sheet string, students []model.Student) error {
	rows := make([][]any, len(students))
	for i, s := range students {
		rows[i] = []any{s.ID, s.Name, s.Subject, s.RatePerClass.StringFixed(2), s.CreatedAt.Format(time.RFC3339)}
	}
	return writeRows(f, sheet, []any{"ID", "Name", "Subject", "Rate Per Class", "Created At"}, rows)
}

func writeClassRecords(f *excelize.File, sheet string, records []model.ClassRecord) error {
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = []any{r.ID, r.StudentID, r.Date, string(r.Status), r.Comment}
	}
	return writeRows(f, sheet, []any{"ID", "Student ID", "Date", "Status", "Comment"}, rows)
}

func writeAccounts(f *excelize.File, sheet string, accounts []model.Account) error {
	rows := make([][]any, len(accounts))
	for i, a := range accounts {
		rows[i] = []any{a.ID, a.Name, string(a.Type), a.Balance.StringFixed(2)}
	}
	return writeRows(f, sheet, []any{"ID", "Name", "Type", "Balance"}, rows)
}

func writeTransactions(f *excelize.File, sheet string, txs []model.Transaction) error {
	rows := make([][]any, len(txs))
	for i, tx := range txs {
		rows[i] = []any{tx.ID, string(tx.Type), tx.Amount.StringFixed(2), tx.AccountID, tx.Category, tx.Comment, tx.Date, tx.Time}
	}
	return writeRows(f, sheet, []any{"ID", "Type", "Amount", "Account ID", "Category", "Comment", "Date", "Time"}, rows)
}

func writeWorks(f *excelize.File, sheet string, works []model.ScheduledWork) error {
	rows := make([][]any, len(works))
	for i, w := range works {
		rows[i] = []any{w.ID, w.Title, w.Description, w.Date, w.Time, string(w.ReminderType), w.Completed}
	}
	return writeRows(f, sheet, []any{"ID", "Title", "Description", "Date", "Time", "Reminder", "Completed"}, rows)
}

func writeItems(f *excelize.File, sheet string, items []model.ShoppingItem) error {
	rows := make([][]any, len(items))
	for i, it := range items {
		rows[i] = []any{it.ID, it.Name, it.ExpectedPrice.StringFixed(2), string(it.Priority), it.Comment, it.Bought, it.CreatedAt.Format(time.RFC3339)}
	}
	return writeRows(f, sheet, []any{"ID", "Name", "Expected Price", "Priority", "Comment", "Bought", "Created At"}, rows)
}

func writeNotes(f *excelize.File, sheet string, all []model.Note) error {
	rows := make([][]any, len(all))
	for i, n := range all {
		rows[i] = []any{n.ID, string(n.Type), n.Title, n.Content, n.Date, n.Time, n.Subject, n.Location, n.DayOfWeek, n.CreatedAt.Format(time.RFC3339)}
	}
	return writeRows(f, sheet, []any{"ID", "Type", "Title", "Content", "Date", "Time", "Subject", "Location", "Day Of Week", "Created At"}, rows)
}
