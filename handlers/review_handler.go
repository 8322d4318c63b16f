package handlers

import (
	"github.com/HarshanaWAJ/GymApp/database"
	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/gofiber/fiber/v2"
)

type ReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"max=500"`
	ClientName string `json:"clientName"`
}

func GetTrainerReviews(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("trainerId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	var reviews []models.Review
	if err := database.DB.
		Where("trainer_id = ?", trainer.ID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}

	return c.JSON(reviews)
}

func CreateReview(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("trainerId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review := models.Review{
		TrainerID:  trainer.ID,
		ClientName: req.ClientName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func UpdateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := database.DB.First(&review, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if req.ClientName != "" {
		review.ClientName = req.ClientName
	}

	if err := database.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update review"})
	}

	return c.JSON(review)
}

func DeleteReview(c *fiber.Ctx) error {
	var review models.Review
	if err := database.DB.First(&review, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review"})
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
