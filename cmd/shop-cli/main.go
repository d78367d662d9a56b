// Package main is the entry point for the shop-cli application.
// It registers the database and configuration sub-commands and executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Mumbi286/DukaYetu/cmd/shop-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "shop-cli",
		Short: "Operational tooling for the shop API",
		Long: `shop-cli runs maintenance tasks against the shop API configuration.

It reads the same environment variables as the API (DATABASE_URL, FRONTEND_URL,
ENVIRONMENT, ...) and an optional YAML file passed with --config.`,
		SilenceUsage: true,
	}

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
