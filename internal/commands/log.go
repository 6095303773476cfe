package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/activitylog"
)

func newLogCommand() *cobra.Command {
	var dir string
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runLog(absDir, limit)
		},
	}
	dirFlag(cmd, &dir)
	cmd.Flags().IntVar(&limit, "limit", 20, "max entries to show")
	return cmd
}

func runLog(dir string, limit int) error {
	entries, err := activitylog.Read(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}

	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	for _, e := range entries {
		fmt.Printf("%s  %-15s %-7s %s\n",
			e.Timestamp.Format(time.DateTime), e.Entity, e.Action, e.Details)
	}
	return nil
}
