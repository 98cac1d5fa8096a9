package model

// Workout is a single logged exercise session. Records are immutable once
// created; edits replace every field except ID and CreatedAt.
type Workout struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD, the day the activity occurred
	Type      string `json:"type"`
	Duration  int    `json:"duration"` // minutes, always > 0
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"` // RFC3339, set once
}

// WorkoutInput carries the user-editable fields of a workout. ID and
// CreatedAt are assigned by the store.
type WorkoutInput struct {
	Date     string
	Type     string
	Duration int
	Notes    string
}

type MonthlySummary struct {
	TotalDuration   int `json:"totalDuration"`
	TotalCount      int `json:"totalCount"`
	AverageDuration int `json:"averageDuration"`
	ActiveDays      int `json:"activeDays"`
}

// WeekdayTotal is one bar of the weekly chart: total minutes for one
// Monday-aligned weekday.
type WeekdayTotal struct {
	Label        string `json:"label"`
	TotalMinutes int    `json:"totalMinutes"`
}

// WeekSummary aggregates the whole Monday-aligned window on top of the
// per-day series.
type WeekSummary struct {
	Days            []WeekdayTotal `json:"days"`
	TotalDuration   int            `json:"totalDuration"`
	TotalCount      int            `json:"totalCount"`
	AverageDuration int            `json:"averageDuration"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
