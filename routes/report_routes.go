package routes

import (
	"github.com/HarshanaWAJ/GymApp/handlers"
	"github.com/HarshanaWAJ/GymApp/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports/bookings", middleware.Protected(), middleware.AdminRequired())
	reports.Get("/monthly", handlers.GetMonthlyBookingHistogram)
	reports.Get("/current-month", handlers.GetCurrentMonthBookingCounts)
	reports.Get("/upcoming", handlers.GetUpcomingBookings)
}
