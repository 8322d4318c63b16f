package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/HarshanaWAJ/GymApp/database"
	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/HarshanaWAJ/GymApp/notifications"
	"github.com/HarshanaWAJ/GymApp/services"
	"github.com/HarshanaWAJ/GymApp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	CardHolder string  `json:"card_holder" validate:"required"`
	CardNumber string  `json:"card_number" validate:"required,numeric,min=12,max=19"`
	ExpDate    string  `json:"exp_date" validate:"required,len=5"`
	CVV        string  `json:"cvv" validate:"required,numeric,min=3,max=4"`
	Amount     float64 `json:"payment" validate:"required,gt=0"`
}

func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

// Checkout records a card purchase for the authenticated member. Only the
// masked card number is persisted; the CVV is never stored.
func Checkout(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var payment models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		receipt, err := utils.GenerateUniqueReceiptNumber(tx)
		if err != nil {
			return err
		}

		payment = models.Payment{
			UserID:     userID,
			CardHolder: req.CardHolder,
			CardNumber: maskCardNumber(req.CardNumber),
			ExpDate:    req.ExpDate,
			Amount:     req.Amount,
			ReceiptNo:  receipt,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process payment"})
	}

	if email, ok := claims["email"].(string); ok {
		body := fmt.Sprintf(
			"<h1>Payment Received</h1><p>Your payment of $%.2f was successful.</p><p>Receipt number: <b>%s</b></p>",
			payment.Amount, payment.ReceiptNo,
		)
		go notifications.SendEmail(req.CardHolder, email, "Your GymApp Receipt", body)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// requireSelfOrAdmin allows members to access only their own records.
func requireSelfOrAdmin(c *fiber.Ctx, userID string) bool {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["role"].(string) == "admin" || claims["user_id"].(string) == userID
}

func GetPurchaseHistory(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !requireSelfOrAdmin(c, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	var payments []models.Payment
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch purchase history"})
	}

	return c.JSON(payments)
}

// GetMonthlyPurchaseReport renders the member's current-month purchases as a
// downloadable PDF.
func GetMonthlyPurchaseReport(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !requireSelfOrAdmin(c, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	var payments []models.Payment
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch purchase history"})
	}

	now := time.Now()
	pdfBytes, err := services.GeneratePurchaseReportPDF(payments, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	filename := fmt.Sprintf("Purchase_Report_%s.pdf", now.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
