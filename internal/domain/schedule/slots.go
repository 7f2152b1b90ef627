package schedule

import (
	"time"

	"github.com/slotframe-app/slotframe/internal/httperr"
)

// Daily booking window, in minutes since midnight. Slots are generated on
// weekdays only and include both window boundaries.
const (
	windowStartMin = 18 * 60
	windowEndMin   = 22 * 60
)

var allowedIntervals = map[int]bool{30: true, 60: true}

type GenerateInput struct {
	StartDate       time.Time
	EndDate         time.Time
	IntervalMinutes int
}

// GenerateSlots expands a date range into the ordered candidate datetimes
// for every weekday in range, stepping IntervalMinutes through the daily
// window. Pure: persisting the result is the caller's job.
func GenerateSlots(in GenerateInput, now time.Time) ([]time.Time, error) {
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, httperr.ErrBusiness("missing_date_range")
	}

	loc := in.StartDate.Location()
	start := truncateToDay(in.StartDate)
	end := truncateToDay(in.EndDate)

	if start.After(end) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	today := truncateToDay(now.In(loc))
	if start.Before(today) {
		return nil, httperr.ErrBusiness("start_date_in_past")
	}

	if !allowedIntervals[in.IntervalMinutes] {
		return nil, httperr.ErrBusiness("interval_not_allowed")
	}

	var slots []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for m := windowStartMin; m <= windowEndMin; m += in.IntervalMinutes {
			slots = append(slots, time.Date(
				day.Year(), day.Month(), day.Day(),
				m/60, m%60, 0, 0,
				loc,
			))
		}
	}

	if len(slots) == 0 {
		return nil, httperr.ErrBusiness("no_weekdays_in_range")
	}

	return slots, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
