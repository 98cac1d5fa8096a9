package fittracker

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

type doctorReport struct {
	DuplicateIDs     int
	InvalidDurations int
	MalformedDates   int
	UnknownTypes     int
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *workout.Store) error {
			report := runDoctor(store.Snapshot().Workouts)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duplicate ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(out, "Invalid durations: %d\n", report.InvalidDurations)
			fmt.Fprintf(out, "Malformed dates: %d\n", report.MalformedDates)
			fmt.Fprintf(out, "Unknown types: %d\n", report.UnknownTypes)
			if report.DuplicateIDs > 0 || report.InvalidDurations > 0 || report.MalformedDates > 0 || report.UnknownTypes > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func runDoctor(workouts []model.Workout) doctorReport {
	report := doctorReport{}
	seen := map[string]bool{}
	for _, w := range workouts {
		if seen[w.ID] {
			report.DuplicateIDs++
		}
		seen[w.ID] = true
		if w.Duration <= 0 {
			report.InvalidDurations++
		}
		if _, err := dateutil.ParseDate(w.Date); err != nil {
			report.MalformedDates++
		}
		if !model.ValidWorkoutType(w.Type) {
			report.UnknownTypes++
		}
	}
	return report
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
