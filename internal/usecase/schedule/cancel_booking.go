package schedule

import (
	"context"
	"time"

	"github.com/slotframe-app/slotframe/internal/audit"
	"github.com/slotframe-app/slotframe/internal/cache"
	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
)

type CancelBookingInput struct {
	ScheduleFrameID string
	Date            time.Time
	ActorID         string
}

type CancelBooking struct {
	repo   domain.Repository
	frames *cache.FrameCache
	audit  *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	frames *cache.FrameCache,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		frames: frames,
		audit:  audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) error {

	frame, err := uc.repo.GetFrameByID(ctx, in.ScheduleFrameID)
	if err != nil {
		return httperr.ErrBusiness("frame_not_found")
	}

	slot := findSlot(frame, in.Date)
	if slot == nil {
		return httperr.ErrBusiness("slot_not_found")
	}

	if err := domain.CanRelease(domain.SlotStatus(slot.Status)); err != nil {
		return err
	}

	if err := uc.repo.ReleaseSlot(ctx, frame.ID, slot.Date); err != nil {
		return err
	}

	uc.frames.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "booking_cancelled",
		Entity:   "schedule_date",
		EntityID: &slot.ID,
		Metadata: map[string]any{"date": slot.Date},
	})

	return nil
}
