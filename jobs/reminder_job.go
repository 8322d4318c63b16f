package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/HarshanaWAJ/GymApp/database"
	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/HarshanaWAJ/GymApp/notifications"
	"github.com/HarshanaWAJ/GymApp/services"
)

const reminderLeadMinutes = 60

// sweepMinutes matches the cron interval so each booking gets exactly one
// reminder: a booking is due when it sits between lead and lead+sweep away.
const sweepMinutes = 5

func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	now := time.Now()

	var bookings []models.Booking
	err := database.DB.
		Preload("Trainer").
		Preload("Slot").
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	upcoming := services.UpcomingWithinWindow(bookings, reminderLeadMinutes+sweepMinutes, now)
	for _, booking := range upcoming {
		at, _ := services.AppointmentInstant(booking)
		if at.Sub(now) <= reminderLeadMinutes*time.Minute {
			continue
		}
		if booking.ClientContact.Email == "" {
			continue
		}

		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Appointment Reminder</h1><p>Hi %s,</p><p>This is a friendly reminder that your session with %s starts at %s.</p>",
			booking.ClientName,
			booking.Trainer.Name,
			booking.Slot.StartTime,
		)

		go notifications.SendEmail(booking.ClientName, booking.ClientContact.Email, emailSubject, emailBody)
	}
}
