package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used at the API boundary.
const DateLayout = "2006-01-02"

// DateOf drops the time of day and the zone, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected %s", ErrValidation, s, DateLayout)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
