package commands

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/activitylog"
	"github.com/timeline-dev/timeline/internal/config"
	"github.com/timeline-dev/timeline/internal/finance"
	"github.com/timeline-dev/timeline/internal/notes"
	"github.com/timeline-dev/timeline/internal/schedule"
	"github.com/timeline-dev/timeline/internal/shopping"
	"github.com/timeline-dev/timeline/internal/store"
	"github.com/timeline-dev/timeline/internal/tuition"
)

// app bundles the opened store, config and services for one command run.
type app struct {
	dir   string
	cfg   *config.Config
	store *store.Store

	tuition  *tuition.Service
	finance  *finance.Service
	schedule *schedule.Service
	shopping *shopping.Service
	notes    *notes.Service
}

// openApp loads config and opens the store under dir.
func openApp(dir string) (*app, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	st, err := store.Open(filepath.Join(absDir, cfg.Storage.File), cfg.Storage.Namespace, log)
	if err != nil {
		return nil, err
	}

	activity := activitylog.NewRecorder(absDir, log)

	return &app{
		dir:      absDir,
		cfg:      cfg,
		store:    st,
		tuition:  tuition.NewService(st, activity),
		finance:  finance.NewService(st, activity),
		schedule: schedule.NewService(st, activity),
		shopping: shopping.NewService(st, activity),
		notes:    notes.NewService(st, activity),
	}, nil
}

// Close releases the store.
func (a *app) Close() error {
	return a.store.Close()
}

// dirFlag registers the shared data-directory flag.
func dirFlag(cmd *cobra.Command, dir *string) {
	cmd.PersistentFlags().StringVar(dir, "dir", ".", "data directory")
}

// currency prefixes an amount string with the configured symbol.
func (a *app) currency(amount string) string {
	return a.cfg.Display.Currency + amount
}
