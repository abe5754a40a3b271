package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a plain calendar date ("2024-06-01") in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// TruncateToDay drops the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days in the inclusive [start, end] range.
// Returns 0 when start is after end.
func DaysBetween(start, end time.Time) int {
	s := TruncateToDay(start)
	e := TruncateToDay(end)
	if s.After(e) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func FormatRFC3339Ptr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatRFC3339(*t)
}
