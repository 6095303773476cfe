package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/finance"
	"github.com/timeline-dev/timeline/internal/period"
	"github.com/timeline-dev/timeline/internal/schedule"
	"github.com/timeline-dev/timeline/internal/shopping"
	"github.com/timeline-dev/timeline/internal/tuition"
)

func newDashboardCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the week at a glance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(dir)
		},
	}
	dirFlag(cmd, &dir)
	return cmd
}

func runDashboard(dir string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	week := period.WeekWindow(now)

	students := a.tuition.Students()
	records := a.tuition.Records()
	txs := a.finance.Transactions()
	works := a.schedule.Works()
	items := a.shopping.Items()

	taken := tuition.ClassesTaken(records, week)
	earnings := tuition.Earnings(students, records, week)
	totals := finance.Sum(txs, week)
	pendingItems := shopping.Pending(items)

	fmt.Printf("Week of %s\n", week.Start)
	fmt.Printf("  Classes taken:   %d (%d students)\n", taken, len(students))
	fmt.Printf("  Earnings:        %s\n", a.currency(earnings.StringFixed(2)))
	fmt.Printf("  Deposits:        %s\n", a.currency(totals.Deposits.StringFixed(2)))
	fmt.Printf("  Spending:        %s\n", a.currency(totals.Spending.StringFixed(2)))
	fmt.Printf("  Pending tasks:   %d\n", schedule.Pending(works))
	fmt.Printf("  Items to buy:    %d (est. %s)\n",
		len(pendingItems), a.currency(shopping.EstimatedCost(items).StringFixed(2)))

	if next := schedule.NextUp(works, 3); len(next) > 0 {
		fmt.Println("Upcoming tasks:")
		for _, w := range next {
			fmt.Printf("  %s %s  %s\n", w.Date, w.Time, w.Title)
		}
	}
	return nil
}
