package handlers

import (
	"time"

	"github.com/slotframe-app/slotframe/internal/timezone"
)

// All request dates are interpreted in the service timezone.

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(timezone.Location(timezone.DefaultTimezone)), nil
}
