package fittracker

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete ALL data (workouts and settings)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("reset deletes all workouts and settings irreversibly; re-run with --yes to confirm")
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			if err := store.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the irreversible wipe")
}
