// Package datemath provides calendar-date parsing and arithmetic for the
// canonical YYYY-MM-DD date strings used throughout the planner. Dates are
// plain civil dates with no timezone component.
package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical calendar date layout.
const Layout = "2006-01-02"

// ParseDate parses a canonical YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("datemath: invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as a canonical YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// Today returns now's calendar date as a canonical string.
func Today(now time.Time) string {
	return now.Format(Layout)
}

// AddDays shifts a canonical date string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// AddMonths shifts t by n calendar months. Out-of-range results normalize
// per time.AddDate (e.g. Jan 31 + 1 month = Mar 2/3).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// AddMonthsClamped shifts t by n calendar months, clamping the day to the
// target month's last day instead of normalizing (Jan 31 + 1 month =
// Feb 28, not Mar 2/3).
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}
