package routes

import (
	"github.com/HarshanaWAJ/GymApp/handlers"
	"github.com/HarshanaWAJ/GymApp/middleware"
	"github.com/gofiber/fiber/v2"
)

func TrainerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	trainers := api.Group("/trainers")
	trainers.Get("", handlers.GetAllTrainers)
	trainers.Get("/:id", handlers.GetTrainerByID)

	admin := trainers.Group("", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/add-trainer", handlers.CreateTrainer)
	admin.Put("/update-trainer/:id", handlers.UpdateTrainer)
	admin.Delete("/delete-trainer/:id", handlers.DeleteTrainer)

	timeslots := api.Group("/timeslots")
	timeslots.Get("/:trainerId", handlers.GetTrainerSlots)

	timeslotAdmin := timeslots.Group("", middleware.Protected(), middleware.AdminRequired())
	timeslotAdmin.Post("/:trainerId", handlers.CreateSlot)
	timeslotAdmin.Put("/status/:id", handlers.SetSlotStatus)
	timeslotAdmin.Delete("/:id", handlers.DeleteSlot)
}
