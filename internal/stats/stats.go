// Package stats is the read side: pure functions deriving calendar marks,
// weekly series and monthly summaries from a workout snapshot. Nothing here
// mutates or caches; results are recomputed per call, which is fine at
// personal-tracker scale.
package stats

import (
	"math"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
)

// CalendarMarks returns the set of dates that have at least one workout.
func CalendarMarks(workouts []model.Workout) map[string]bool {
	marks := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		marks[w.Date] = true
	}
	return marks
}

// WeeklySeries sums durations per day over the Monday-aligned week
// containing the reference date. Always seven entries; days without
// workouts total zero.
func WeeklySeries(workouts []model.Workout, referenceDate string) ([]model.WeekdayTotal, error) {
	week, err := dateutil.MondayAlignedWeek(referenceDate)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int, len(workouts))
	for _, w := range workouts {
		totals[w.Date] += w.Duration
	}
	series := make([]model.WeekdayTotal, 0, 7)
	for _, date := range week {
		label, err := dateutil.WeekdayAbbreviation(date)
		if err != nil {
			return nil, err
		}
		series = append(series, model.WeekdayTotal{
			Label:        label,
			TotalMinutes: totals[date],
		})
	}
	return series, nil
}

// WeekSummary aggregates the whole Monday-aligned window: the per-day
// series plus window totals.
func WeekSummary(workouts []model.Workout, referenceDate string) (model.WeekSummary, error) {
	series, err := WeeklySeries(workouts, referenceDate)
	if err != nil {
		return model.WeekSummary{}, err
	}
	week, err := dateutil.MondayAlignedWeek(referenceDate)
	if err != nil {
		return model.WeekSummary{}, err
	}
	inWeek := make(map[string]bool, 7)
	for _, date := range week {
		inWeek[date] = true
	}
	out := model.WeekSummary{Days: series}
	for _, w := range workouts {
		if inWeek[w.Date] {
			out.TotalDuration += w.Duration
			out.TotalCount++
		}
	}
	out.AverageDuration = roundedAverage(out.TotalDuration, out.TotalCount)
	return out, nil
}

// MonthlySummary aggregates all workouts falling in the given year and
// month. An empty month yields the zero summary.
func MonthlySummary(workouts []model.Workout, year, month int) model.MonthlySummary {
	summary := model.MonthlySummary{}
	activeDays := map[string]bool{}
	for _, w := range workouts {
		if !dateutil.IsInMonth(w.Date, year, month) {
			continue
		}
		summary.TotalDuration += w.Duration
		summary.TotalCount++
		activeDays[w.Date] = true
	}
	summary.ActiveDays = len(activeDays)
	summary.AverageDuration = roundedAverage(summary.TotalDuration, summary.TotalCount)
	return summary
}

// FilterByDate returns the workouts logged on one date, preserving the
// collection's insertion order.
func FilterByDate(workouts []model.Workout, date string) []model.Workout {
	out := make([]model.Workout, 0)
	for _, w := range workouts {
		if w.Date == date {
			out = append(out, w)
		}
	}
	return out
}

// roundedAverage rounds half away from zero and returns 0 for an empty
// collection.
func roundedAverage(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
