package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/featherlane/henhouse-go/internal/infrastructure/database"
)

// NewSavesCommand creates the saves command with subcommands
func NewSavesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage save slots",
	}
	cmd.AddCommand(newSavesListCommand())
	cmd.AddCommand(newSavesShowCommand())
	cmd.AddCommand(newSavesDeleteCommand())
	return cmd
}

func newSavesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, repo, err := openRepository()
			if err != nil {
				return err
			}
			defer database.Close(db)

			saves, err := repo.List(context.Background())
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				fmt.Println("No saves yet.")
				return nil
			}

			names := make([]string, 0, len(saves))
			for name := range saves {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Printf("%-20s %12s %10s %8s  %s\n", "NAME", "MONEY", "CHICKENS", "ORDERS", "LAST UPDATE")
			for _, name := range names {
				s := saves[name]
				fmt.Printf("%-20s %12.2f %10d %8d  %s\n",
					name, s.Money, s.Chickens+s.GoldenChickens, s.CompletedOrders,
					s.LastUpdate.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newSavesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Dump one save slot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, repo, err := openRepository()
			if err != nil {
				return err
			}
			defer database.Close(db)

			state, err := repo.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			if state == nil {
				return fmt.Errorf("no save named %q", args[0])
			}
			fmt.Println(prettyPrint(state))
			return nil
		},
	}
}

func newSavesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete one save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, repo, err := openRepository()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := repo.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted save %q\n", args[0])
			return nil
		},
	}
}
