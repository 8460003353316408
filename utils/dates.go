package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for dates in requests and query strings
const DateLayout = "2006-01-02"

// ParseDate parses a date in YYYY-MM-DD form, falling back to RFC 3339
// for clients that send full timestamps
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected %s", value, DateLayout)
}

// DayRange returns the [start, end) bounds of the calendar day containing t
func DayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
