package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/activitylog"
	"github.com/timeline-dev/timeline/internal/config"
	"github.com/timeline-dev/timeline/internal/finance"
	"github.com/timeline-dev/timeline/internal/store"
)

func newInitCommand() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new timeline data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, namespace)
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "timeline", "storage key prefix")

	return cmd
}

func runInit(dir, namespace string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default()
	cfg.Storage.Namespace = namespace
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	st, err := store.Open(filepath.Join(dir, cfg.Storage.File), cfg.Storage.Namespace, log)
	if err != nil {
		return err
	}
	defer st.Close()

	// Seed the starter accounts so finance works out of the box.
	svc := finance.NewService(st, activitylog.NewRecorder(dir, log))
	if err := svc.SeedAccounts(); err != nil {
		return fmt.Errorf("seeding accounts: %w", err)
	}

	fmt.Printf("Initialized timeline data directory at %s\n", dir)
	return nil
}
