package models

import (
	"time"

	"github.com/google/uuid"
)

type Trainer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Specialization string    `gorm:"size:255" json:"specialization"`
	Experience     int       `gorm:"default:0" json:"experience"`
	Available      bool      `gorm:"default:true" json:"available"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Email          string    `gorm:"size:255" json:"email"`
	Image          *string   `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
