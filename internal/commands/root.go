// Package commands wires the CLI to the services. Everything here is
// presentation: parsing flags, invoking one service call, printing the
// result.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "timeline",
		Short:   "Personal tracker for tuition, finance, tasks, shopping and notes",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newStudentCommand())
	rootCmd.AddCommand(newClassCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newTaskCommand())
	rootCmd.AddCommand(newShopCommand())
	rootCmd.AddCommand(newNoteCommand())
	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}
