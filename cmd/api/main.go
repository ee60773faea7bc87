package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Portfolio content API",
	Long: `portfolio-api serves the portfolio content store, the admin CRUD API,
the arena, the contact inbox and persona explanations over HTTP.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var port string

func init() {
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
