package schedule

import (
	"context"

	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/models"
)

type FrameDetail struct {
	Frame        *models.ScheduleFrame `json:"frame"`
	Appointments []models.Appointment  `json:"appointments"`
}

type GetFrame struct {
	repo domain.Repository
}

func NewGetFrame(
	repo domain.Repository,
) *GetFrame {
	return &GetFrame{
		repo: repo,
	}
}

func (uc *GetFrame) Execute(
	ctx context.Context,
	frameID string,
) (*FrameDetail, error) {

	frame, err := uc.repo.GetFrameByID(ctx, frameID)
	if err != nil {
		return nil, httperr.ErrBusiness("frame_not_found")
	}

	aps, err := uc.repo.ListFrameAppointments(ctx, frame.ID)
	if err != nil {
		return nil, err
	}

	return &FrameDetail{
		Frame:        frame,
		Appointments: aps,
	}, nil
}
