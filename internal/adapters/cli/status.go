package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featherlane/henhouse-go/internal/infrastructure/database"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current farm state",
		Long: `Display a summary of the save slot the daemon is playing.

Example:
  henhouse status
  henhouse status --save weekend-farm`,
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
				fmt.Printf("No save named %q yet. Start the daemon to create one.\n", name)
				return nil
			}

			fmt.Printf("Farm %q\n", name)
			fmt.Println("================")
			fmt.Printf("Money:            $%.2f\n", state.Money)
			fmt.Printf("Chickens:         %d (+%d golden)\n", state.Chickens, state.GoldenChickens)
			fmt.Printf("Feed:             %.1f units\n", state.Feed)
			fmt.Printf("Eggs ready:       %d (+%d golden)\n", state.ReadyEggs, state.ReadyGoldenEggs)
			fmt.Printf("Egg inventory:    %d (+%d golden)\n", state.EggInventory, state.GoldenEggInventory)
			fmt.Printf("Cooking:          %d/%d slots\n", len(state.ProductionQueue), state.ProductionSlots)
			fmt.Printf("Breeding:         %d jobs\n", len(state.BreedingQueue))
			fmt.Printf("Kitchen level:    %d\n", state.KitchenUpgrades)

			if state.RestaurantUnlocked {
				fmt.Printf("Restaurant:       %d locations, %d/%d orders\n",
					state.Restaurants.Count, len(state.ActiveOrders), state.Restaurants.Capacity())
				fmt.Printf("Orders served:    %d\n", state.CompletedOrders)
			} else {
				fmt.Println("Restaurant:       locked")
			}

			if warnings := state.Warnings(); len(warnings) > 0 {
				fmt.Println("\nWarnings:")
				for _, w := range warnings {
					fmt.Printf("  - %s\n", w)
				}
			}

			fmt.Printf("\nLast update: %s\n", state.LastUpdate.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
