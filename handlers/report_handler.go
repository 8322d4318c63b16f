package handlers

import (
	"time"

	"github.com/HarshanaWAJ/GymApp/services"
	"github.com/gofiber/fiber/v2"
)

const defaultHistogramMonths = 6
const defaultUpcomingWindowMinutes = 60

// GetMonthlyBookingHistogram feeds the admin dashboard's stacked bar chart:
// per-status booking counts for the last ?months= calendar months.
func GetMonthlyBookingHistogram(c *fiber.Ctx) error {
	months := c.QueryInt("months", defaultHistogramMonths)
	if months < 1 || months > 24 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "months must be between 1 and 24"})
	}

	bookings, err := bookingService().ListBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(services.MonthlyStatusHistogram(bookings, months, time.Now()))
}

func GetCurrentMonthBookingCounts(c *fiber.Ctx) error {
	bookings, err := bookingService().ListBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(services.CurrentMonthStatusCounts(bookings, time.Now()))
}

// GetUpcomingBookings returns active bookings whose appointment instant falls
// within the next ?window= minutes.
func GetUpcomingBookings(c *fiber.Ctx) error {
	window := c.QueryInt("window", defaultUpcomingWindowMinutes)
	if window < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "window must be positive"})
	}

	bookings, err := bookingService().ListBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	active := bookings[:0]
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}

	return c.JSON(services.UpcomingWithinWindow(active, window, time.Now()))
}
