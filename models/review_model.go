package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TrainerID  uuid.UUID `gorm:"not null" json:"-"`
	ClientName string    `gorm:"size:255" json:"clientName"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"size:500" json:"comment"`

	Trainer Trainer `gorm:"foreignkey:TrainerID" json:"trainer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
