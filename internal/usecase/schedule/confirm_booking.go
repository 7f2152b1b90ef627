package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/slotframe-app/slotframe/internal/audit"
	"github.com/slotframe-app/slotframe/internal/cache"
	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/metrics"
	"github.com/slotframe-app/slotframe/internal/models"
	"github.com/slotframe-app/slotframe/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmBookingInput struct {
	ScheduleFrameID string
	UserID          string
	Date            time.Time
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	repo   domain.Repository
	frames *cache.FrameCache
	audit  *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	frames *cache.FrameCache,
	audit *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		frames: frames,
		audit:  audit,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Appointment, error) {

	frame, err := uc.repo.GetFrameByID(ctx, in.ScheduleFrameID)
	if err != nil {
		return nil, httperr.ErrBusiness("frame_not_found")
	}

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	slot := findSlot(frame, in.Date)
	if slot == nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	// Early reject on a slot already seen booked. The conditional update
	// in BookSlot stays authoritative under concurrency.
	if err := domain.CanBook(domain.SlotStatus(slot.Status)); err != nil {
		return nil, err
	}

	now := timezone.Now()

	ap := &models.Appointment{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		UserName:        user.Name,
		ScheduleFrameID: frame.ID,
		ScheduleTitle:   frame.Title,
		Date:            slot.Date,
		CreatedAt:       now,
	}

	if err := uc.repo.BookSlot(ctx, ap, now); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			metrics.IncBookingConfirmed("conflict")

			uc.audit.Dispatch(audit.Event{
				UserID:   &in.UserID,
				Action:   "booking_conflict",
				Entity:   "schedule_date",
				EntityID: &slot.ID,
				Metadata: map[string]any{"date": slot.Date},
			})
		}
		return nil, err
	}

	uc.frames.Invalidate(ctx)
	metrics.IncBookingConfirmed("success")

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"date": ap.Date},
	})

	return ap, nil
}

func findSlot(frame *models.ScheduleFrame, date time.Time) *models.ScheduleDate {
	for i := range frame.Dates {
		if frame.Dates[i].Date.Equal(date) {
			return &frame.Dates[i]
		}
	}
	return nil
}
