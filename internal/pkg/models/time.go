package models

import (
	"time"
)

// DateLayout is the ISO calendar date format used by the booking form
const DateLayout = "2006-01-02"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatDate formats t as an ISO calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NextDay returns midnight of the day after t, in t's location
func NextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
