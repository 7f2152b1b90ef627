package schedule

import (
	"context"
	"time"

	"github.com/slotframe-app/slotframe/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Schedule Frame --------
	GetFrameByID(
		ctx context.Context,
		id string,
	) (*models.ScheduleFrame, error)

	ListFrames(
		ctx context.Context,
	) ([]models.ScheduleFrame, error)

	CreateFrame(
		ctx context.Context,
		frame *models.ScheduleFrame,
	) error

	DeleteFrame(
		ctx context.Context,
		id string,
	) error

	// -------- Booking (atomic slot flip + appointment insert) --------
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
		now time.Time,
	) error

	ReleaseSlot(
		ctx context.Context,
		frameID string,
		date time.Time,
	) error

	// -------- Appointments --------
	ListUpcomingAppointments(
		ctx context.Context,
		userID string,
		now time.Time,
	) ([]models.Appointment, error)

	ListPastAppointments(
		ctx context.Context,
		userID string,
		now time.Time,
	) ([]models.Appointment, error)

	ListFrameAppointments(
		ctx context.Context,
		frameID string,
	) ([]models.Appointment, error)
}
