package schedule

import (
	"context"

	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/models"
	"github.com/slotframe-app/slotframe/internal/timezone"
)

const (
	ScopeUpcoming = "upcoming"
	ScopePast     = "past"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute partitions appointments against "now" at call time: upcoming is
// strictly future ordered ascending, past is everything else ordered
// descending. An empty userID returns all users.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID string,
	scope string,
) ([]models.Appointment, error) {

	now := timezone.Now()

	switch scope {
	case ScopeUpcoming:
		return uc.repo.ListUpcomingAppointments(ctx, userID, now)
	case ScopePast:
		return uc.repo.ListPastAppointments(ctx, userID, now)
	default:
		return nil, httperr.ErrBusiness("invalid_scope")
	}
}
