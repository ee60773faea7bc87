package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Developer-Sahil/portfolio-system/config"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio-worker",
	Short:         "Operator tasks for the portfolio API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML fixture to load (required)")
	_ = seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the global logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)
	return cfg, logger, nil
}
