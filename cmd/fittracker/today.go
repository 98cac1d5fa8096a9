package fittracker

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *workout.Store) error {
			formatted, err := dateutil.FormatDate(dateutil.Today())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatted)
			printWorkoutTable(cmd.OutOrStdout(), store.Today())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
