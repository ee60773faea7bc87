package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Developer-Sahil/portfolio-system/config"
	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/bootstrap"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/repository"
	"github.com/Developer-Sahil/portfolio-system/internal/content/service"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load content from a YAML fixture; records that already exist are skipped",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if cfg.Database.Backend != config.BackendPostgres {
			return fmt.Errorf("seed needs STORE_BACKEND=postgres, got %q", cfg.Database.Backend)
		}

		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()
		fixture, err := service.LoadFixture(f)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN, MaxConns: 2})
		if err != nil {
			return err
		}
		defer pool.Close()

		operator := authdomain.Identity{Email: cfg.Auth.AdminEmail, Method: authdomain.MethodCLI}
		if operator.IsZero() {
			operator.Email = "operator@localhost"
		}

		rep, err := service.New(repository.NewPostgres(pool)).Seed(ctx, operator, fixture)
		if err != nil {
			return err
		}
		for _, k := range domain.Kinds {
			logger.Info("seeded",
				zap.String("kind", string(k)),
				zap.Int("created", rep.Created[k]),
				zap.Int("skipped", rep.Skipped[k]))
		}
		return nil
	},
}
