package handlers

import (
	"github.com/HarshanaWAJ/GymApp/database"
	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/gofiber/fiber/v2"
)

type CreateSlotRequest struct {
	Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

type SlotStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available booked canceled"`
}

func GetTrainerSlots(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("trainerId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	var slots []models.Slot
	if err := database.DB.
		Where("trainer_id = ?", trainer.ID).
		Order("day asc, start_time asc").
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch time slots"})
	}

	return c.JSON(slots)
}

func CreateSlot(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := database.DB.First(&trainer, "id = ?", c.Params("trainerId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	var req CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartTime >= req.EndTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	slot := models.Slot{
		TrainerID: trainer.ID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.SlotStatusAvailable,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create time slot"})
	}

	return c.Status(fiber.StatusCreated).JSON(slot)
}

// SetSlotStatus is the admin override for a slot's lifecycle state, used to
// cancel a recurring window or bring it back.
func SetSlotStatus(c *fiber.Ctx) error {
	var req SlotStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var slot models.Slot
	if err := database.DB.First(&slot, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Time slot not found"})
	}

	slot.Status = req.Status
	if err := database.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update time slot"})
	}

	return c.JSON(slot)
}

func DeleteSlot(c *fiber.Ctx) error {
	var slot models.Slot
	if err := database.DB.First(&slot, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Time slot not found"})
	}

	if err := database.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete time slot"})
	}

	return c.JSON(fiber.Map{"message": "Time slot deleted successfully"})
}
