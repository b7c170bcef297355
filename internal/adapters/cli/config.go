package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featherlane/henhouse-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Configuration is loaded from multiple sources with priority:
1. Environment variables (HH_* prefix)
2. Config file (config.yaml)
3. Default values`,
	}
	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Henhouse Configuration")
			fmt.Println("======================")

			fmt.Println("Database:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			} else if cfg.Database.URL != "" {
				fmt.Printf("  URL:              (set)\n")
			} else {
				fmt.Printf("  Host:             %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Printf("  Database:         %s\n", cfg.Database.Name)
				fmt.Printf("  User:             %s\n", cfg.Database.User)
			}

			fmt.Println("\nEngine:")
			fmt.Printf("  Tick Interval:    %s\n", cfg.Engine.TickInterval)
			fmt.Printf("  Customer Arrival: %s\n", cfg.Engine.CustomerInterval)
			fmt.Printf("  Order Expiry:     %s\n", cfg.Engine.ExpiryInterval)
			fmt.Printf("  Autosave:         %s\n", cfg.Engine.AutosaveInterval)

			fmt.Println("\nDaemon:")
			fmt.Printf("  PID File:         %s\n", cfg.Daemon.PIDFile)
			fmt.Printf("  Save Slot:        %s\n", cfg.Daemon.SaveName)
			fmt.Printf("  Metrics Address:  %s\n", cfg.Daemon.MetricsAddr)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}
