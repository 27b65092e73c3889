package engine

import "time"

// DateLayout is the date-only format used across persisted records.
const DateLayout = "2006-01-02"

// Midnight strips the time-of-day component in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateString formats t as a date-only string.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date-only string in the local timezone.
// ok is false for empty or malformed input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// daysSince returns the fractional day count from then to now.
func daysSince(now, then time.Time) float64 {
	return now.Sub(then).Hours() / 24
}
