package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func IsBookingStatus(s string) bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type ClientContact struct {
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:255" json:"email"`
}

// Booking is a client's claim on a trainer's slot for a specific calendar date.
// The date is distinct from the slot's recurring weekday.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TrainerID uuid.UUID `gorm:"not null" json:"-"`
	SlotID    uuid.UUID `gorm:"not null" json:"-"`

	ClientName    string        `gorm:"size:255;not null" json:"clientName"`
	ClientContact ClientContact `gorm:"embedded;embeddedPrefix:contact_" json:"clientContact"`
	Date          time.Time     `json:"date"`
	Status        string        `gorm:"size:20;not null;default:'pending'" json:"status"`

	Trainer Trainer `gorm:"foreignkey:TrainerID" json:"trainerId"`
	Slot    Slot    `gorm:"foreignkey:SlotID" json:"slotId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive reports whether the booking still claims its slot.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}
