package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/finance"
	"github.com/timeline-dev/timeline/internal/importer"
	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/period"
)

func newTxCommand() *cobra.Command {
	var dir string

	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and review transactions",
	}
	dirFlag(txCmd, &dir)
	txCmd.AddCommand(newTxAddCommand(&dir))
	txCmd.AddCommand(newTxListCommand(&dir))
	txCmd.AddCommand(newTxSummaryCommand(&dir))
	txCmd.AddCommand(newTxImportCommand(&dir))
	return txCmd
}

func newTxAddCommand(dir *string) *cobra.Command {
	var account string
	var category string
	var comment string
	var date string
	var clock string

	cmd := &cobra.Command{
		Use:   "add <deposit|withdrawal|spending> <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}
			return runTxAdd(*dir, finance.TxParams{
				Type:      model.TransactionType(args[0]),
				Amount:    amount,
				AccountID: account,
				Category:  category,
				Comment:   comment,
				Date:      date,
				Time:      clock,
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "cash", "account id")
	cmd.Flags().StringVar(&category, "category", "", "spending category")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form comment")
	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "", "transaction time (HH:MM)")

	return cmd
}

func runTxAdd(dir string, params finance.TxParams) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	tx, err := a.finance.AddTransaction(params)
	if err != nil {
		return err
	}

	name := finance.AccountName(a.finance.Accounts(), tx.AccountID)
	fmt.Printf("Recorded %s of %s on %s (%s)\n",
		tx.Type, a.currency(tx.Amount.StringFixed(2)), tx.Date, name)
	return nil
}

func newTxListCommand(dir *string) *cobra.Command {
	var periodName string
	var txType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in a period, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTxList(*dir, periodName, txType)
		},
	}

	cmd.Flags().StringVar(&periodName, "period", "week", "day, week or month")
	cmd.Flags().StringVar(&txType, "type", "", "filter: deposit, withdrawal or spending")

	return cmd
}

func runTxList(dir, periodName, txType string) error {
	p, err := period.Parse(periodName)
	if err != nil {
		return err
	}

	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	w := period.WindowOf(p, time.Now())
	accounts := a.finance.Accounts()
	txs := finance.Filter(a.finance.Transactions(), w, model.TransactionType(txType))
	if len(txs) == 0 {
		fmt.Println("No transactions in this period.")
		return nil
	}

	for _, tx := range txs {
		extra := ""
		if tx.Category != "" {
			extra = "  [" + tx.Category + "]"
		}
		if tx.Comment != "" {
			extra += "  // " + tx.Comment
		}
		fmt.Printf("%s  %-10s %10s  %s%s\n",
			tx.Date, tx.Type, a.currency(tx.Amount.StringFixed(2)),
			finance.AccountName(accounts, tx.AccountID), extra)
	}
	return nil
}

func newTxSummaryCommand(dir *string) *cobra.Command {
	var periodName string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show period totals and net balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTxSummary(*dir, periodName)
		},
	}

	cmd.Flags().StringVar(&periodName, "period", "week", "day, week or month")

	return cmd
}

func runTxSummary(dir, periodName string) error {
	p, err := period.Parse(periodName)
	if err != nil {
		return err
	}

	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	w := period.WindowOf(p, time.Now())
	totals := finance.Sum(a.finance.Transactions(), w)

	fmt.Printf("Period %s (%s to %s)\n", p, w.Start, w.End)
	fmt.Printf("  Deposits:     %s\n", a.currency(totals.Deposits.StringFixed(2)))
	fmt.Printf("  Withdrawals:  %s\n", a.currency(totals.Withdrawals.StringFixed(2)))
	fmt.Printf("  Spending:     %s\n", a.currency(totals.Spending.StringFixed(2)))
	fmt.Printf("  Net balance:  %s\n", a.currency(totals.Net().StringFixed(2)))
	return nil
}

func newTxImportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long:  "Import transactions from a CSV file with header: " + importer.Header,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTxImport(*dir, args[0])
		},
	}
	return cmd
}

func runTxImport(dir, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	imported, rowErrs, err := importer.Import(a.finance, f)
	if err != nil {
		return err
	}

	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "skipped: %v\n", re)
	}
	fmt.Printf("Imported %d transactions (%d skipped)\n", len(imported), len(rowErrs))
	return nil
}
