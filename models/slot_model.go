package models

import (
	"github.com/google/uuid"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
	SlotStatusCanceled  = "canceled"
)

// Slot is a recurring weekly time window a trainer offers for appointments.
// StartTime and EndTime are wall-clock "HH:MM" values with no timezone.
type Slot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TrainerID uuid.UUID `gorm:"not null" json:"-"`
	Day       string    `gorm:"size:10;not null" json:"day"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`
	Status    string    `gorm:"size:20;not null;default:'available'" json:"status"`

	Trainer Trainer `gorm:"foreignkey:TrainerID" json:"trainer,omitempty"`
}
