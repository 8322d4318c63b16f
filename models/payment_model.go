package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a completed checkout. CardNumber is stored already masked
// to the last four digits.
type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null" json:"userId"`
	CardHolder string    `gorm:"size:255;not null" json:"card_holder"`
	CardNumber string    `gorm:"size:19;not null" json:"card_number"`
	ExpDate    string    `gorm:"size:5" json:"exp_date"`
	Amount     float64   `gorm:"type:numeric(10,2);not null" json:"payment"`
	ReceiptNo  string    `gorm:"size:12;unique" json:"receiptNo"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
