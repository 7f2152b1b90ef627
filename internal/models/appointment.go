package models

import "time"

// UserName and ScheduleTitle are snapshots taken at booking time and do
// not follow later renames of the user or the frame.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID   string `gorm:"type:uuid;index;not null" json:"user_id"`
	UserName string `gorm:"size:100;not null" json:"user_name"`

	ScheduleFrameID string `gorm:"type:uuid;index;not null" json:"schedule_frame_id"`
	ScheduleTitle   string `gorm:"size:100;not null" json:"schedule_title"`

	Date time.Time `gorm:"not null;index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
