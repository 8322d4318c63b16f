package utils

import (
	"math/rand"
	"time"

	"github.com/HarshanaWAJ/GymApp/models"
	"gorm.io/gorm"
)

const receiptNumberLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateUniqueReceiptNumber(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, receiptNumberLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		receipt := string(b)

		var payment models.Payment
		err := tx.Where("receipt_no = ?", receipt).First(&payment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return receipt, nil
			}
			return "", err
		}
	}
}
