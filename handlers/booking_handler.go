package handlers

import (
	"errors"
	"fmt"
	"time"

	config "github.com/HarshanaWAJ/GymApp/configs"
	"github.com/HarshanaWAJ/GymApp/database"
	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/HarshanaWAJ/GymApp/notifications"
	"github.com/HarshanaWAJ/GymApp/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClientName    string               `json:"clientName" validate:"required"`
	ClientContact models.ClientContact `json:"clientContact"`
	Date          string               `json:"date" validate:"required,datetime=2006-01-02"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func bookingService() *services.BookingService {
	return services.NewBookingService(
		database.DB,
		services.TransitionPolicy(config.Config("BOOKING_TRANSITION_POLICY")),
	)
}

func bookingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTrainerNotFound),
		errors.Is(err, services.ErrSlotNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrSlotUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrTransitionNotAllowed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func CreateBooking(c *fiber.Ctx) error {
	trainerID, err := uuid.Parse(c.Params("trainerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}
	slotID, err := uuid.Parse(c.Params("slotId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid slot id"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	booking, err := bookingService().CreateBooking(trainerID, slotID, services.BookingRequest{
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
		Date:          date,
	})
	if err != nil {
		return bookingError(c, err)
	}

	if booking.ClientContact.Email != "" {
		body := fmt.Sprintf(
			"<h1>Booking Received</h1><p>Hi %s, your appointment with %s on %s (%s %s - %s) is pending confirmation.</p>",
			booking.ClientName, booking.Trainer.Name, booking.Date.Format("Jan 2, 2006"),
			booking.Slot.Day, booking.Slot.StartTime, booking.Slot.EndTime,
		)
		go notifications.SendEmail(booking.ClientName, booking.ClientContact.Email, "Your Booking Request", body)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBookings lists all bookings with trainer and slot summaries embedded.
// An optional ?client= query filters by client-name substring.
func GetBookings(c *fiber.Ctx) error {
	bookings, err := bookingService().ListBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	bookings = services.FilterByClientNameSubstring(bookings, c.Query("client"))

	return c.JSON(bookings)
}

// GetMyBookings lists the bookings tied to the authenticated member's email.
// Identity comes from the JWT claims on this request, never from shared
// client-side state.
func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	email := claims["email"].(string)

	bookings, err := bookingService().ListClientBookings(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := bookingService().ChangeStatus(bookingID, req.Status)
	if err != nil {
		return bookingError(c, err)
	}

	if req.Status == models.BookingStatusCancelled && booking.ClientContact.Email != "" {
		body := fmt.Sprintf(
			"<h1>Booking Cancelled</h1><p>Hi %s, your appointment with %s on %s has been cancelled.</p>",
			booking.ClientName, booking.Trainer.Name, booking.Date.Format("Jan 2, 2006"),
		)
		go notifications.SendEmail(booking.ClientName, booking.ClientContact.Email, "Booking Cancelled", body)
	}

	return c.JSON(booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	if err := bookingService().DeleteBooking(bookingID); err != nil {
		return bookingError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Booking deleted successfully"})
}
