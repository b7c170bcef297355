package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	saveName   string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "henhouse",
		Short: "Henhouse CLI - Inspect and manage farm saves",
		Long: `Henhouse CLI works against the same save database the daemon plays in.

Examples:
  henhouse status
  henhouse saves list
  henhouse saves show default
  henhouse saves delete old-farm
  henhouse simulate --duration 2h
  henhouse config show`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&saveName, "save", "",
		"Save slot name (default: the daemon's configured slot)")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewSavesCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
