package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/export"
)

func newExportCommand() *cobra.Command {
	var dir string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every collection to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(dir, out)
		},
	}
	dirFlag(cmd, &dir)
	cmd.Flags().StringVar(&out, "out", "timeline.xlsx", "output file")
	return cmd
}

func runExport(dir, out string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	data := export.Data{
		Students:       a.tuition.Students(),
		ClassRecords:   a.tuition.Records(),
		Accounts:       a.finance.Accounts(),
		Transactions:   a.finance.Transactions(),
		ScheduledWorks: a.schedule.Works(),
		ShoppingItems:  a.shopping.Items(),
		Notes:          a.notes.Notes(),
	}
	if err := export.Save(out, data); err != nil {
		return err
	}

	fmt.Printf("Exported to %s\n", out)
	return nil
}
