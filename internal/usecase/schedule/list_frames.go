package schedule

import (
	"context"

	"github.com/slotframe-app/slotframe/internal/cache"
	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/models"
)

type ListFrames struct {
	repo   domain.Repository
	frames *cache.FrameCache
}

func NewListFrames(
	repo domain.Repository,
	frames *cache.FrameCache,
) *ListFrames {
	return &ListFrames{
		repo:   repo,
		frames: frames,
	}
}

func (uc *ListFrames) Execute(ctx context.Context) ([]models.ScheduleFrame, error) {
	if cached, ok := uc.frames.GetFrames(ctx); ok {
		return cached, nil
	}

	frames, err := uc.repo.ListFrames(ctx)
	if err != nil {
		return nil, err
	}

	uc.frames.SetFrames(ctx, frames)
	return frames, nil
}
