package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotframe-app/slotframe/internal/httperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSlots(t *testing.T) {
	now := date(2025, time.June, 1)

	t.Run("SingleWeekdayHourly", func(t *testing.T) {
		// Monday, 60-minute interval: 18:00 through 22:00 inclusive.
		slots, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 2),
			EndDate:         date(2025, time.June, 2),
			IntervalMinutes: 60,
		}, now)

		require.NoError(t, err)
		require.Len(t, slots, 5)
		assert.Equal(t, time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC), slots[0])
		assert.Equal(t, time.Date(2025, time.June, 2, 22, 0, 0, 0, time.UTC), slots[4])
	})

	t.Run("SingleWeekdayHalfHourly", func(t *testing.T) {
		slots, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 2),
			EndDate:         date(2025, time.June, 2),
			IntervalMinutes: 30,
		}, now)

		require.NoError(t, err)
		assert.Len(t, slots, 9)
		assert.Equal(t, time.Date(2025, time.June, 2, 18, 30, 0, 0, time.UTC), slots[1])
		assert.Equal(t, time.Date(2025, time.June, 2, 22, 0, 0, 0, time.UTC), slots[8])
	})

	t.Run("FullWeekSkipsWeekend", func(t *testing.T) {
		// Mon 2nd through Sun 8th: five weekdays.
		slots, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 2),
			EndDate:         date(2025, time.June, 8),
			IntervalMinutes: 60,
		}, now)

		require.NoError(t, err)
		assert.Len(t, slots, 25)

		for _, s := range slots {
			wd := s.Weekday()
			assert.NotEqual(t, time.Saturday, wd)
			assert.NotEqual(t, time.Sunday, wd)

			minutes := s.Hour()*60 + s.Minute()
			assert.GreaterOrEqual(t, minutes, 18*60)
			assert.LessOrEqual(t, minutes, 22*60)
			assert.Zero(t, minutes%60)
		}
	})

	t.Run("Ordered", func(t *testing.T) {
		slots, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 2),
			EndDate:         date(2025, time.June, 6),
			IntervalMinutes: 30,
		}, now)

		require.NoError(t, err)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Before(slots[i]))
		}
	})

	t.Run("WeekendOnlyRange", func(t *testing.T) {
		// Sat 7th to Sun 8th: no qualifying weekday.
		_, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 7),
			EndDate:         date(2025, time.June, 8),
			IntervalMinutes: 30,
		}, now)

		assert.True(t, httperr.IsBusiness(err, "no_weekdays_in_range"))
	})

	t.Run("MissingDates", func(t *testing.T) {
		_, err := GenerateSlots(GenerateInput{IntervalMinutes: 60}, now)
		assert.True(t, httperr.IsBusiness(err, "missing_date_range"))
	})

	t.Run("StartAfterEnd", func(t *testing.T) {
		_, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 10),
			EndDate:         date(2025, time.June, 2),
			IntervalMinutes: 60,
		}, now)

		assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
	})

	t.Run("StartInPast", func(t *testing.T) {
		_, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.May, 30),
			EndDate:         date(2025, time.June, 2),
			IntervalMinutes: 60,
		}, now)

		assert.True(t, httperr.IsBusiness(err, "start_date_in_past"))
	})

	t.Run("StartTodayAllowed", func(t *testing.T) {
		// "Past" is measured against the day, not the clock.
		slots, err := GenerateSlots(GenerateInput{
			StartDate:       date(2025, time.June, 2),
			EndDate:         date(2025, time.June, 2),
			IntervalMinutes: 60,
		}, time.Date(2025, time.June, 2, 23, 30, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Len(t, slots, 5)
	})

	t.Run("IntervalNotAllowed", func(t *testing.T) {
		for _, interval := range []int{0, 15, 45, 90} {
			_, err := GenerateSlots(GenerateInput{
				StartDate:       date(2025, time.June, 2),
				EndDate:         date(2025, time.June, 2),
				IntervalMinutes: interval,
			}, now)

			assert.True(t, httperr.IsBusiness(err, "interval_not_allowed"), "interval %d", interval)
		}
	})
}

func TestSlotStatus(t *testing.T) {
	assert.NoError(t, CanBook(StatusAvailable))
	assert.True(t, httperr.IsBusiness(CanBook(StatusBooked), "slot_unavailable"))

	assert.NoError(t, CanRelease(StatusBooked))
	assert.True(t, httperr.IsBusiness(CanRelease(StatusAvailable), "invalid_state"))

	assert.Equal(t, StatusAvailable, InitialStatus())
}
