package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slotframe-app/slotframe/internal/audit"
	"github.com/slotframe-app/slotframe/internal/cache"
	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/metrics"
	"github.com/slotframe-app/slotframe/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateFrameInput struct {
	Title   string
	Dates   []time.Time
	ActorID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateFrame struct {
	repo   domain.Repository
	frames *cache.FrameCache
	audit  *audit.Dispatcher
}

func NewCreateFrame(
	repo domain.Repository,
	frames *cache.FrameCache,
	audit *audit.Dispatcher,
) *CreateFrame {
	return &CreateFrame{
		repo:   repo,
		frames: frames,
		audit:  audit,
	}
}

func (uc *CreateFrame) Execute(
	ctx context.Context,
	in CreateFrameInput,
) (*models.ScheduleFrame, error) {

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.ErrBusiness("missing_title")
	}

	if len(in.Dates) == 0 {
		return nil, httperr.ErrBusiness("missing_dates")
	}

	frame := &models.ScheduleFrame{
		ID:    uuid.NewString(),
		Title: title,
		Dates: make([]models.ScheduleDate, 0, len(in.Dates)),
	}

	seen := make(map[time.Time]bool, len(in.Dates))
	for _, d := range in.Dates {
		d = d.Truncate(time.Minute)
		if seen[d] {
			return nil, httperr.ErrBusiness("duplicate_dates")
		}
		seen[d] = true

		frame.Dates = append(frame.Dates, models.ScheduleDate{
			ID:              uuid.NewString(),
			ScheduleFrameID: frame.ID,
			Date:            d,
			Status:          string(domain.InitialStatus()),
		})
	}

	if err := uc.repo.CreateFrame(ctx, frame); err != nil {
		return nil, err
	}

	uc.frames.Invalidate(ctx)
	metrics.IncFramesCreated()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "frame_created",
		Entity:   "schedule_frame",
		EntityID: &frame.ID,
		Metadata: map[string]any{"slots": len(frame.Dates)},
	})

	return frame, nil
}
