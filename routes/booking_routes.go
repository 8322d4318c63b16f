package routes

import (
	"github.com/HarshanaWAJ/GymApp/handlers"
	"github.com/HarshanaWAJ/GymApp/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("/me", handlers.GetMyBookings)
	bookings.Post("/:trainerId/:slotId", handlers.CreateBooking)
	bookings.Delete("/:id", handlers.DeleteBooking)

	admin := bookings.Group("", middleware.AdminRequired())
	admin.Get("", handlers.GetBookings)
	admin.Put("/status/:id", handlers.UpdateBookingStatus)
}
