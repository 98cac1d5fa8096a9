package fittracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/stats"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

const barWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Weekly and monthly statistics",
}

var statsWeekDate string

var statsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Per-weekday totals for the Monday-aligned week",
	RunE: func(cmd *cobra.Command, args []string) error {
		refDate := statsWeekDate
		if refDate == "" {
			refDate = dateutil.Today()
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			summary, err := stats.WeekSummary(store.Snapshot().Workouts, refDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			max := 0
			for _, day := range summary.Days {
				if day.TotalMinutes > max {
					max = day.TotalMinutes
				}
			}
			for _, day := range summary.Days {
				bar := ""
				if max > 0 {
					bar = strings.Repeat("#", day.TotalMinutes*barWidth/max)
				}
				fmt.Fprintf(out, "%s %4d  %s\n", day.Label, day.TotalMinutes, bar)
			}
			fmt.Fprintf(out, "\nTotal:    %s\n", dateutil.FormatDuration(summary.TotalDuration))
			fmt.Fprintf(out, "Sessions: %d\n", summary.TotalCount)
			fmt.Fprintf(out, "Average:  %s\n", dateutil.FormatDuration(summary.AverageDuration))
			return nil
		})
	},
}

var statsMonthValue string

var statsMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Monthly summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := parseMonthArg(statsMonthValue)
		if err != nil {
			return err
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			summary := stats.MonthlySummary(store.Snapshot().Workouts, year, month)
			out := cmd.OutOrStdout()
			if summary.TotalCount == 0 {
				fmt.Fprintf(out, "No workouts recorded for %04d-%02d.\n", year, month)
				return nil
			}
			fmt.Fprintf(out, "Total time:   %s\n", dateutil.FormatDuration(summary.TotalDuration))
			fmt.Fprintf(out, "Sessions:     %d\n", summary.TotalCount)
			fmt.Fprintf(out, "Average time: %s\n", dateutil.FormatDuration(summary.AverageDuration))
			fmt.Fprintf(out, "Active days:  %d\n", summary.ActiveDays)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsWeekCmd, statsMonthCmd)

	statsWeekCmd.Flags().StringVar(&statsWeekDate, "date", "", "Reference date YYYY-MM-DD (default today)")
	statsMonthCmd.Flags().StringVar(&statsMonthValue, "month", "", "Month YYYY-MM (default current)")
}
