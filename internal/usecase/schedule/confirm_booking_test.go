package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/models"
)

func testFrame(slotDate time.Time, status domain.SlotStatus) *models.ScheduleFrame {
	return &models.ScheduleFrame{
		ID:    "frame-1",
		Title: "Weekly sync",
		Dates: []models.ScheduleDate{
			{
				ID:              "slot-1",
				ScheduleFrameID: "frame-1",
				Date:            slotDate,
				Status:          string(status),
			},
		},
	}
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	slotDate := time.Date(2030, time.March, 4, 18, 0, 0, 0, time.UTC)

	user := &models.User{ID: "user-1", Name: "Hanako Sato", Email: "hanako@example.com"}

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewConfirmBooking(repo, nil, nil)

		repo.On("GetFrameByID", ctx, "frame-1").
			Return(testFrame(slotDate, domain.StatusAvailable), nil).Once()
		repo.On("GetUserByID", ctx, "user-1").Return(user, nil).Once()
		repo.On("BookSlot", ctx, mock.AnythingOfType("*models.Appointment"), mock.AnythingOfType("time.Time")).
			Return(nil).Once()

		ap, err := uc.Execute(ctx, ConfirmBookingInput{
			ScheduleFrameID: "frame-1",
			UserID:          "user-1",
			Date:            slotDate,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, ap.ID)
		assert.Equal(t, "user-1", ap.UserID)
		assert.Equal(t, "Hanako Sato", ap.UserName)
		assert.Equal(t, "frame-1", ap.ScheduleFrameID)
		assert.Equal(t, "Weekly sync", ap.ScheduleTitle)
		assert.True(t, ap.Date.Equal(slotDate))
		repo.AssertExpectations(t)
	})

	t.Run("FrameNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewConfirmBooking(repo, nil, nil)

		repo.On("GetFrameByID", ctx, "missing").
			Return(nil, errors.New("record not found")).Once()

		_, err := uc.Execute(ctx, ConfirmBookingInput{
			ScheduleFrameID: "missing",
			UserID:          "user-1",
			Date:            slotDate,
		})

		assert.True(t, httperr.IsBusiness(err, "frame_not_found"))
	})

	t.Run("UserNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewConfirmBooking(repo, nil, nil)

		repo.On("GetFrameByID", ctx, "frame-1").
			Return(testFrame(slotDate, domain.StatusAvailable), nil).Once()
		repo.On("GetUserByID", ctx, "ghost").
			Return(nil, errors.New("record not found")).Once()

		_, err := uc.Execute(ctx, ConfirmBookingInput{
			ScheduleFrameID: "frame-1",
			UserID:          "ghost",
			Date:            slotDate,
		})

		assert.True(t, httperr.IsBusiness(err, "user_not_found"))
	})

	t.Run("SlotNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewConfirmBooking(repo, nil, nil)

		repo.On("GetFrameByID", ctx, "frame-1").
			Return(testFrame(slotDate, domain.StatusAvailable), nil).Once()
		repo.On("GetUserByID", ctx, "user-1").Return(user, nil).Once()

		_, err := uc.Execute(ctx, ConfirmBookingInput{
			ScheduleFrameID: "frame-1",
			UserID:          "user-1",
			Date:            slotDate.Add(time.Hour),
		})

		assert.True(t, httperr.IsBusiness(err, "slot_not_found"))
		repo.AssertNotCalled(t, "BookSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SlotAlreadyBooked", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewConfirmBooking(repo, nil, nil)

		repo.On("GetFrameByID", ctx, "frame-1").
			Return(testFrame(slotDate, domain.StatusBooked), nil).Once()
		repo.On("GetUserByID", ctx, "user-1").Return(user, nil).Once()

		_, err := uc.Execute(ctx, ConfirmBookingInput{
			ScheduleFrameID: "frame-1",
			UserID:          "user-1",
			Date:            slotDate,
		})

		assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
		repo.AssertNotCalled(t, "BookSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LostConditionalUpdate", func(t *testing.T) {
		// The slot looked available on read but another confirmation won
		// the conditional update in between.
		repo := new(mockRepo)
		uc := NewConfirmBooking(repo, nil, nil)

		repo.On("GetFrameByID", ctx, "frame-1").
			Return(testFrame(slotDate, domain.StatusAvailable), nil).Once()
		repo.On("GetUserByID", ctx, "user-1").Return(user, nil).Once()
		repo.On("BookSlot", ctx, mock.AnythingOfType("*models.Appointment"), mock.AnythingOfType("time.Time")).
			Return(httperr.ErrBusiness("slot_unavailable")).Once()

		_, err := uc.Execute(ctx, ConfirmBookingInput{
			ScheduleFrameID: "frame-1",
			UserID:          "user-1",
			Date:            slotDate,
		})

		assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
		repo.AssertExpectations(t)
	})
}
