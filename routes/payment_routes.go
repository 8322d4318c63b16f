package routes

import (
	"github.com/HarshanaWAJ/GymApp/handlers"
	"github.com/HarshanaWAJ/GymApp/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payment := api.Group("/payment", middleware.Protected())
	payment.Post("", handlers.Checkout)
	payment.Get("/purchase-history/:userId", handlers.GetPurchaseHistory)
	payment.Get("/report/:userId", handlers.GetMonthlyPurchaseReport)
}
