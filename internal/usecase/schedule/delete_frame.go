package schedule

import (
	"context"

	"github.com/slotframe-app/slotframe/internal/audit"
	"github.com/slotframe-app/slotframe/internal/cache"
	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
)

type DeleteFrame struct {
	repo   domain.Repository
	frames *cache.FrameCache
	audit  *audit.Dispatcher
}

func NewDeleteFrame(
	repo domain.Repository,
	frames *cache.FrameCache,
	audit *audit.Dispatcher,
) *DeleteFrame {
	return &DeleteFrame{
		repo:   repo,
		frames: frames,
		audit:  audit,
	}
}

func (uc *DeleteFrame) Execute(
	ctx context.Context,
	frameID string,
	actorID string,
) error {

	if err := uc.repo.DeleteFrame(ctx, frameID); err != nil {
		return err
	}

	uc.frames.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "frame_deleted",
		Entity:   "schedule_frame",
		EntityID: &frameID,
	})

	return nil
}
