package handlers

import (
	"log"

	"github.com/HarshanaWAJ/GymApp/database"
	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TrainerRequest struct {
	Name           string  `json:"name" validate:"required"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience" validate:"min=0"`
	Available      bool    `json:"available"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Image          *string `json:"image,omitempty"`
}

type TrainerSummary struct {
	models.Trainer
	AvgRating   *float64 `json:"avgRating,omitempty"`
	ReviewCount int64    `json:"reviewCount"`
}

type trainerRatingRow struct {
	TrainerID uuid.UUID
	Avg       float64
	Count     int64
}

// GetAllTrainers lists trainers with a per-trainer review summary. The
// summary lookup is best-effort: if it fails the listing still succeeds
// without ratings.
func GetAllTrainers(c *fiber.Ctx) error {
	var trainers []models.Trainer
	if err := database.DB.Order("name asc").Find(&trainers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trainers"})
	}

	ratings := make(map[uuid.UUID]trainerRatingRow, len(trainers))
	var rows []trainerRatingRow
	err := database.DB.Model(&models.Review{}).
		Select("trainer_id, avg(rating) as avg, count(*) as count").
		Group("trainer_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Review summary lookup failed: %v", err)
	} else {
		for _, row := range rows {
			ratings[row.TrainerID] = row
		}
	}

	summaries := make([]TrainerSummary, 0, len(trainers))
	for _, t := range trainers {
		summary := TrainerSummary{Trainer: t}
		if row, ok := ratings[t.ID]; ok {
			avg := row.Avg
			summary.AvgRating = &avg
			summary.ReviewCount = row.Count
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(summaries)
}

func GetTrainerByID(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}
	return c.JSON(trainer)
}

func CreateTrainer(c *fiber.Ctx) error {
	var req TrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trainer := models.Trainer{
		Name:           req.Name,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Available:      req.Available,
		Phone:          req.Phone,
		Email:          req.Email,
		Image:          req.Image,
	}
	if err := database.DB.Create(&trainer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create trainer"})
	}

	return c.Status(fiber.StatusCreated).JSON(trainer)
}

func UpdateTrainer(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	var req TrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trainer.Name = req.Name
	trainer.Specialization = req.Specialization
	trainer.Experience = req.Experience
	trainer.Available = req.Available
	trainer.Phone = req.Phone
	trainer.Email = req.Email
	trainer.Image = req.Image

	if err := database.DB.Save(&trainer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trainer"})
	}

	return c.JSON(trainer)
}

func DeleteTrainer(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	if err := database.DB.Delete(&trainer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trainer"})
	}

	return c.JSON(fiber.Map{"message": "Trainer deleted successfully"})
}
