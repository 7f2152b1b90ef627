package models

import "time"

type ScheduleDate struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ScheduleFrameID string    `gorm:"type:uuid;index;not null" json:"schedule_frame_id"`
	Date            time.Time `gorm:"not null;index" json:"date"`

	Status string `gorm:"size:20;default:'available'" json:"status"`

	BookedByID *string    `gorm:"type:uuid" json:"booked_by_id"`
	BookedAt   *time.Time `json:"booked_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
