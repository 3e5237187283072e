package utils

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ParseDateOnly parses a strict YYYY-MM-DD string into a UTC midnight instant.
// time.Parse alone accepts variants like "2024-1-1", so the parsed value is
// formatted back and must match the input exactly.
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if FormatDateOnly(t) != s {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDateOnly renders a UTC YYYY-MM-DD string, the inverse of ParseDateOnly.
func FormatDateOnly(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// IsWithinWeek reports whether date falls in the closed 7-day window
// [weekStart, weekStart+6d]. Comparison is in UTC day units.
func IsWithinWeek(date, weekStart time.Time) bool {
	if date.Before(weekStart) {
		return false
	}
	return !date.After(weekStart.AddDate(0, 0, 6))
}

// WeekStartOf returns the Monday of the week containing t.
func WeekStartOf(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)
	shift := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		shift = -6
	}
	return t.AddDate(0, 0, shift)
}
