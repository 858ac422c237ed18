package domain

import (
	"strings"
	"time"
)

// DisplayDateLayout renders dates like "Tuesday 06 July 2021".
const DisplayDateLayout = "Monday 02 January 2006"

// isoLayouts are the ISO-8601 shapes accepted in the date column, tried in order.
// Fractional seconds are accepted by time.Parse after any seconds field.
var isoLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseDate parses an ISO-8601 calendar date with an optional time and offset.
// The offset, when present, is kept so the calendar date stays as written.
func ParseDate(iso string) (time.Time, error) {
	s := strings.TrimSpace(iso)
	var firstErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &FormatError{Field: "date", Value: iso, Err: firstErr}
}

// FormatDate converts an ISO-8601 date into the display form, e.g.
// "2021-07-06" -> "Tuesday 06 July 2021".
func FormatDate(iso string) (string, error) {
	t, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayDateLayout), nil
}
