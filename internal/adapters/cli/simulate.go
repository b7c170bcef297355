package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
	"github.com/featherlane/henhouse-go/internal/infrastructure/database"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var duration time.Duration
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance a save offline by a given duration",
		Long: `Run the game loop against a save without the daemon, stepping
simulated time forward. Useful for testing farm setups.

Do not run this while the daemon is playing the same slot.

Examples:
  henhouse simulate --duration 30m
  henhouse simulate --duration 2h --save weekend-farm --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, repo, err := openRepository()
			if err != nil {
				return err
			}
			defer database.Close(db)

			name := effectiveSaveName(cfg)
			state, err := repo.Load(context.Background(), name)
			if err != nil {
				return err
			}
			if state == nil {
				return fmt.Errorf("no save named %q", name)
			}

			before := state.Clone()
			clock := shared.NewMockClock(state.LastUpdate)
			eng := engine.NewEngine(state, clock, nil, nil, nil, nil)
			engine.Simulate(eng, clock, duration, cfg.Engine.TickInterval)
			after := eng.Snapshot()

			fmt.Printf("Simulated %s on %q\n", duration, name)
			fmt.Printf("  Money:     $%.2f -> $%.2f\n", before.Money, after.Money)
			fmt.Printf("  Feed:      %.1f -> %.1f\n", before.Feed, after.Feed)
			fmt.Printf("  Ready eggs: %d -> %d\n", before.ReadyEggs, after.ReadyEggs)
			fmt.Printf("  Products:  %d -> %d kinds\n", len(before.Products), len(after.Products))
			fmt.Printf("  Orders:    %d active\n", len(after.ActiveOrders))

			if dryRun {
				fmt.Println("Dry run: save not written.")
				return nil
			}
			if err := repo.Save(context.Background(), name, after); err != nil {
				return err
			}
			fmt.Println("✓ Save updated")
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", time.Hour, "Simulated duration to advance")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the outcome without writing the save")
	return cmd
}
