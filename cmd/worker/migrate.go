package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Developer-Sahil/portfolio-system/config"
	"github.com/Developer-Sahil/portfolio-system/internal/bootstrap"
	"github.com/Developer-Sahil/portfolio-system/internal/content/repository"
	inboxrepo "github.com/Developer-Sahil/portfolio-system/internal/inbox/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the content and inbox tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if cfg.Database.Backend != config.BackendPostgres {
			return fmt.Errorf("migrate needs STORE_BACKEND=postgres, got %q", cfg.Database.Backend)
		}
		ctx := cmd.Context()
		opts := bootstrap.DBOptions{DSN: cfg.Database.DSN, MaxConns: 2}

		pool, err := bootstrap.OpenDB(ctx, opts)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := repository.Migrate(ctx, pool); err != nil {
			return err
		}

		db, err := bootstrap.OpenSQL(ctx, opts)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := inboxrepo.Migrate(ctx, db); err != nil {
			return err
		}

		logger.Info("migrations applied")
		return nil
	},
}
