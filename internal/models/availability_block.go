package models

import (
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
)

type AvailabilityBlock struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index:idx_availability_provider_weekday;not null" json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday   clock.Weekday   `gorm:"size:10;index:idx_availability_provider_weekday;not null" json:"weekday"`
	StartTime clock.TimeOfDay `gorm:"size:5;not null" json:"start_time"`
	EndTime   clock.TimeOfDay `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
