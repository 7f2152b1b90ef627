package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Schedule Frame
// --------------------------------------------------

func (r *ScheduleGormRepository) GetFrameByID(
	ctx context.Context,
	id string,
) (*models.ScheduleFrame, error) {

	var frame models.ScheduleFrame
	if err := r.db.WithContext(ctx).
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Where("id = ?", id).
		First(&frame).Error; err != nil {
		return nil, err
	}
	return &frame, nil
}

func (r *ScheduleGormRepository) ListFrames(
	ctx context.Context,
) ([]models.ScheduleFrame, error) {

	var frames []models.ScheduleFrame
	if err := r.db.WithContext(ctx).
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Order("created_at DESC").
		Find(&frames).Error; err != nil {
		return nil, err
	}
	return frames, nil
}

func (r *ScheduleGormRepository) CreateFrame(
	ctx context.Context,
	frame *models.ScheduleFrame,
) error {
	return r.db.WithContext(ctx).Create(frame).Error
}

func (r *ScheduleGormRepository) DeleteFrame(
	ctx context.Context,
	id string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("schedule_frame_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("schedule_frame_id = ?", id).
			Delete(&models.ScheduleDate{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.ScheduleFrame{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("frame_not_found")
		}

		return nil
	})
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// BookSlot flips the slot to booked and inserts the appointment in one
// transaction. The conditional UPDATE is the mutual-exclusion boundary:
// of N concurrent confirmations for the same slot exactly one sees
// RowsAffected == 1, the rest fail with slot_unavailable.
func (r *ScheduleGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.ScheduleDate{}).
			Where(
				"schedule_frame_id = ? AND date = ? AND status = ?",
				ap.ScheduleFrameID, ap.Date, string(domain.StatusAvailable),
			).
			Updates(map[string]interface{}{
				"status":       string(domain.StatusBooked),
				"booked_by_id": ap.UserID,
				"booked_at":    now,
			})

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(ap).Error
	})
}

// ReleaseSlot undoes a booking: frees the slot and removes the matching
// appointment together, so the frame and appointment set never diverge.
func (r *ScheduleGormRepository) ReleaseSlot(
	ctx context.Context,
	frameID string,
	date time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.ScheduleDate{}).
			Where(
				"schedule_frame_id = ? AND date = ? AND status = ?",
				frameID, date, string(domain.StatusBooked),
			).
			Updates(map[string]interface{}{
				"status":       string(domain.StatusAvailable),
				"booked_by_id": nil,
				"booked_at":    nil,
			})

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_not_booked")
		}

		return tx.
			Where("schedule_frame_id = ? AND date = ?", frameID, date).
			Delete(&models.Appointment{}).Error
	})
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) ListUpcomingAppointments(
	ctx context.Context,
	userID string,
	now time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("date > ?", now).
		Order("date ASC")

	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListPastAppointments(
	ctx context.Context,
	userID string,
	now time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("date <= ?", now).
		Order("date DESC")

	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListFrameAppointments(
	ctx context.Context,
	frameID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("schedule_frame_id = ?", frameID).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
