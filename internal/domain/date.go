package domain

import "time"

// DateLayout is the calendar date format used for every stored date. It sorts
// lexicographically in calendar order, so dates compare as plain strings.
const DateLayout = "2006-01-02"

// FormatDate returns the local calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Weekday returns 0 (Sunday) through 6 (Saturday) for a calendar date.
func Weekday(date string) (int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// AddDays shifts a calendar date by n days. An unparseable date is returned as is.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}
