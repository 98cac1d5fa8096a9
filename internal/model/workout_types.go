package model

// WorkoutTypeOption pairs a workout category with its display icon.
type WorkoutTypeOption struct {
	Label string
	Icon  string
}

// WorkoutTypeOptions is the closed set of workout categories. The labels
// double as the stored Type values.
var WorkoutTypeOptions = []WorkoutTypeOption{
	{Label: "running", Icon: "🏃"},
	{Label: "strength", Icon: "💪"},
	{Label: "yoga", Icon: "🧘"},
	{Label: "walking", Icon: "🚶"},
	{Label: "cycling", Icon: "🚴"},
	{Label: "swimming", Icon: "🏊"},
	{Label: "stretching", Icon: "🤸"},
	{Label: "other", Icon: "⭐"},
}

// DurationPresets are the quick-select duration values, in minutes.
var DurationPresets = []int{15, 30, 45, 60, 90, 120}

func ValidWorkoutType(label string) bool {
	for _, opt := range WorkoutTypeOptions {
		if opt.Label == label {
			return true
		}
	}
	return false
}

func WorkoutTypeIcon(label string) string {
	for _, opt := range WorkoutTypeOptions {
		if opt.Label == label {
			return opt.Icon
		}
	}
	return ""
}
