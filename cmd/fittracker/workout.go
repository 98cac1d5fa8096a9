package fittracker

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/stats"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

var (
	addDate     string
	addType     string
	addDuration int
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := parseWorkoutInput(addDate, addType, addDuration, addNotes)
		if err != nil {
			return err
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			w := store.Add(in)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s workout on %s (%s)\n",
				model.WorkoutTypeIcon(w.Type), w.Type, w.Date, dateutil.FormatDuration(w.Duration))
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", w.ID)
			return nil
		})
	},
}

var (
	listDate  string
	listMonth string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listDate != "" && listMonth != "" {
			return fmt.Errorf("--date cannot be combined with --month")
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			workouts := store.Snapshot().Workouts
			if listDate != "" {
				if _, err := dateutil.ParseDate(listDate); err != nil {
					return err
				}
				workouts = stats.FilterByDate(workouts, listDate)
			}
			if listMonth != "" {
				year, month, err := parseMonthArg(listMonth)
				if err != nil {
					return err
				}
				filtered := make([]model.Workout, 0, len(workouts))
				for _, w := range workouts {
					if dateutil.IsInMonth(w.Date, year, month) {
						filtered = append(filtered, w)
					}
				}
				workouts = filtered
			}
			printWorkoutTable(cmd.OutOrStdout(), workouts)
			return nil
		})
	},
}

var (
	updateDate     string
	updateType     string
	updateDuration int
	updateNotes    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := parseWorkoutInput(updateDate, updateType, updateDuration, updateNotes)
		if err != nil {
			return err
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			if !store.Update(args[0], in) {
				fmt.Fprintf(cmd.OutOrStdout(), "No workout with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workout %s\n", args[0])
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *workout.Store) error {
			if !store.Delete(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "No workout with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", args[0])
			return nil
		})
	},
}

func printWorkoutTable(out io.Writer, workouts []model.Workout) {
	if len(workouts) == 0 {
		fmt.Fprintln(out, "No workouts recorded.")
		return
	}
	fmt.Fprintln(out, "ID\tDATE\tTYPE\tDURATION\tNOTES")
	for _, w := range workouts {
		fmt.Fprintf(out, "%s\t%s\t%s %s\t%s\t%s\n",
			w.ID, w.Date, model.WorkoutTypeIcon(w.Type), w.Type, dateutil.FormatDuration(w.Duration), w.Notes)
	}
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, updateCmd, deleteCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "Date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addType, "type", "", "Workout type (running, strength, yoga, walking, cycling, swimming, stretching, other)")
	addCmd.Flags().IntVar(&addDuration, "duration", 0, "Duration in minutes (presets: 15, 30, 45, 60, 90, 120)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")
	_ = addCmd.MarkFlagRequired("type")
	_ = addCmd.MarkFlagRequired("duration")

	updateCmd.Flags().StringVar(&updateDate, "date", "", "Date YYYY-MM-DD (default today)")
	updateCmd.Flags().StringVar(&updateType, "type", "", "Workout type")
	updateCmd.Flags().IntVar(&updateDuration, "duration", 0, "Duration in minutes")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "Optional notes")
	_ = updateCmd.MarkFlagRequired("type")
	_ = updateCmd.MarkFlagRequired("duration")

	listCmd.Flags().StringVar(&listDate, "date", "", "Filter by date YYYY-MM-DD")
	listCmd.Flags().StringVar(&listMonth, "month", "", "Filter by month YYYY-MM")
}
