package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/timeline-dev/timeline/internal/model"
)

func sampleData() Data {
	return Data{
		Students: []model.Student{
			{ID: "s1", Name: "Rahim", Subject: "Math", RatePerClass: decimal.RequireFromString("500")},
		},
		Transactions: []model.Transaction{
			{ID: "t1", Type: model.TxDeposit, Amount: decimal.RequireFromString("500"), AccountID: "cash", Date: "2025-06-16"},
		},
		ShoppingItems: []model.ShoppingItem{
			{ID: "i1", Name: "Rice", ExpectedPrice: decimal.RequireFromString("85"), Priority: model.PriorityHigh},
		},
	}
}

func TestWorkbook_HasOneSheetPerCollection(t *testing.T) {
	f, err := Workbook(sampleData())
	require.NoError(t, err)
	defer f.Close()

	want := []string{"Students", "Class Records", "Accounts", "Transactions", "Tasks", "Shopping", "Notes"}
	assert.ElementsMatch(t, want, f.GetSheetList())
}

func TestWorkbook_WritesHeaderAndRows(t *testing.T) {
	f, err := Workbook(sampleData())
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Students", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	student, err := f.GetCellValue("Students", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Rahim", student)

	amount, err := f.GetCellValue("Transactions", "C2")
	require.NoError(t, err)
	assert.Equal(t, "500.00", amount)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.xlsx")
	require.NoError(t, Save(path, sampleData()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetCellValue("Shopping", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Rice", got)
}
