package fittracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/stats"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month calendar with workout marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := parseMonthArg(calendarMonth)
		if err != nil {
			return err
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			marks := stats.CalendarMarks(store.Snapshot().Workouts)
			renderCalendar(cmd, year, month, marks)
			return nil
		})
	},
}

// renderCalendar prints a Sunday-first month grid, four columns per cell,
// with a dot next to each day that has at least one workout.
func renderCalendar(cmd *cobra.Command, year, month int, marks map[string]bool) {
	out := cmd.OutOrStdout()
	title := fmt.Sprintf("%s %d", time.Month(month).String(), year)
	fmt.Fprintf(out, "%s\n", center(title, 28))
	fmt.Fprintln(out, " Su  Mo  Tu  We  Th  Fr  Sa")

	var row strings.Builder
	col := dateutil.FirstWeekdayOfMonth(year, month)
	row.WriteString(strings.Repeat("    ", col))

	for day, date := range dateutil.MonthDates(year, month) {
		mark := " "
		if marks[date] {
			mark = "•"
		}
		row.WriteString(fmt.Sprintf("%3d%s", day+1, mark))
		col++
		if col == 7 {
			fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
			row.Reset()
			col = 0
		}
	}
	if row.Len() > 0 {
		fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month YYYY-MM (default current)")
}
