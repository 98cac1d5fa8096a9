// Package dateutil holds the pure calendar arithmetic the rest of the app is
// built on: month lengths, Monday-aligned weeks, date enumeration and the
// YYYY-MM-DD date-string format workouts are keyed by. All month and week
// boundary handling (December→January, leap February) lives here so callers
// never special-case it.
package dateutil

import (
	"fmt"
	"time"
)

// DateFormat is the canonical workout date layout.
const DateFormat = "2006-01-02"

var weekdayAbbreviations = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseDate parses a YYYY-MM-DD date string in the local time zone.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

// ToDateString formats a time as YYYY-MM-DD.
func ToDateString(t time.Time) string {
	return t.Format(DateFormat)
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return ToDateString(time.Now())
}

// DaysInMonth returns the number of days in the given month, leap years
// included. Day zero of the following month normalizes to the last day of
// this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the first day of the month,
// 0=Sunday through 6=Saturday.
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthDates enumerates every date of the month in ascending order.
func MonthDates(year, month int) []string {
	n := DaysInMonth(year, month)
	dates := make([]string, 0, n)
	for d := 1; d <= n; d++ {
		dates = append(dates, fmt.Sprintf("%04d-%02d-%02d", year, month, d))
	}
	return dates
}

// MondayAlignedWeek returns the seven dates of the Monday..Sunday week
// containing the reference date, crossing month and year boundaries as
// needed.
func MondayAlignedWeek(referenceDate string) ([]string, error) {
	t, err := ParseDate(referenceDate)
	if err != nil {
		return nil, err
	}
	monday := t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
	week := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, ToDateString(monday.AddDate(0, 0, i)))
	}
	return week, nil
}

// FormatDuration renders a minute count as "{m} minutes", "{h} hours" for
// exact hour multiples, or "{h} hours {m} minutes".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	remaining := minutes % 60
	if remaining == 0 {
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d hours %d minutes", hours, remaining)
}

// WeekdayAbbreviation returns the short label for a date's weekday.
func WeekdayAbbreviation(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return weekdayAbbreviations[int(t.Weekday())], nil
}

// FormatDate renders a date as e.g. "Jan 15 (Mon)" for list output.
func FormatDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d (%s)", t.Format("Jan"), t.Day(), weekdayAbbreviations[int(t.Weekday())]), nil
}

// IsInMonth reports whether the date falls in the given year and month.
func IsInMonth(date string, year, month int) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return t.Year() == year && int(t.Month()) == month
}
