package schedule

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/slotframe-app/slotframe/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) GetFrameByID(ctx context.Context, id string) (*models.ScheduleFrame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduleFrame), args.Error(1)
}

func (m *mockRepo) ListFrames(ctx context.Context) ([]models.ScheduleFrame, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ScheduleFrame), args.Error(1)
}

func (m *mockRepo) CreateFrame(ctx context.Context, frame *models.ScheduleFrame) error {
	return m.Called(ctx, frame).Error(0)
}

func (m *mockRepo) DeleteFrame(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) BookSlot(ctx context.Context, ap *models.Appointment, now time.Time) error {
	return m.Called(ctx, ap, now).Error(0)
}

func (m *mockRepo) ReleaseSlot(ctx context.Context, frameID string, date time.Time) error {
	return m.Called(ctx, frameID, date).Error(0)
}

func (m *mockRepo) ListUpcomingAppointments(ctx context.Context, userID string, now time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListPastAppointments(ctx context.Context, userID string, now time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListFrameAppointments(ctx context.Context, frameID string) ([]models.Appointment, error) {
	args := m.Called(ctx, frameID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}
