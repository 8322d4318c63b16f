package routes

import (
	"github.com/HarshanaWAJ/GymApp/handlers"
	"github.com/HarshanaWAJ/GymApp/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews")
	reviews.Get("/:trainerId", handlers.GetTrainerReviews)

	authed := reviews.Group("", middleware.Protected())
	authed.Post("/:trainerId", handlers.CreateReview)
	authed.Put("/:id", handlers.UpdateReview)
	authed.Delete("/:id", handlers.DeleteReview)
}
