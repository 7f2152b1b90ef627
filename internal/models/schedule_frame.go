package models

import "time"

type ScheduleFrame struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title string `gorm:"size:100;not null" json:"title"`

	Dates []ScheduleDate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"dates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
