package services

import (
	"os"
	"testing"
	"time"

	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupBookingDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Trainer{}, &models.Slot{}, &models.Booking{})
	assert.NoError(t, err)

	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM slots")
	db.Exec("DELETE FROM trainers")

	return db
}

func seedTrainerAndSlot(t *testing.T, db *gorm.DB) (models.Trainer, models.Slot) {
	trainer := models.Trainer{
		ID:             uuid.New(),
		Name:           "Tess",
		Specialization: "Strength",
		Experience:     5,
		Available:      true,
	}
	assert.NoError(t, db.Create(&trainer).Error)

	slot := models.Slot{
		ID:        uuid.New(),
		TrainerID: trainer.ID,
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.SlotStatusAvailable,
	}
	assert.NoError(t, db.Create(&slot).Error)

	return trainer, slot
}

func slotStatus(t *testing.T, db *gorm.DB, slotID uuid.UUID) string {
	var slot models.Slot
	assert.NoError(t, db.First(&slot, "id = ?", slotID).Error)
	return slot.Status
}

func TestBookingLifecycle(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, PermissiveTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)
	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	// An available slot can be booked; the booking starts pending.
	b1, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{
		ClientName:    "Alice",
		ClientContact: models.ClientContact{Email: "alice@example.com"},
		Date:          date,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b1.Status)
	assert.Equal(t, trainer.Name, b1.Trainer.Name)
	assert.Equal(t, models.SlotStatusBooked, slotStatus(t, db, slot.ID))

	// A second booking against the same slot fails and creates nothing.
	_, err = svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{
		ClientName: "Bob",
		Date:       date,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, models.SlotStatusBooked, slotStatus(t, db, slot.ID))

	// Cancelling the only active booking releases the slot.
	cancelled, err := svc.ChangeStatus(b1.ID, models.BookingStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, models.SlotStatusAvailable, slotStatus(t, db, slot.ID))

	// The freed slot can be booked again.
	b2, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{
		ClientName: "Bob",
		Date:       date.AddDate(0, 0, 7),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b2.Status)
	assert.Equal(t, models.SlotStatusBooked, slotStatus(t, db, slot.ID))

	// Deleting the active booking releases the slot again.
	assert.NoError(t, svc.DeleteBooking(b2.ID))
	assert.Equal(t, models.SlotStatusAvailable, slotStatus(t, db, slot.ID))

	_, err = svc.GetBooking(b2.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateBookingNotFoundCases(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, PermissiveTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)

	_, err := svc.CreateBooking(uuid.New(), slot.ID, BookingRequest{ClientName: "Alice"})
	assert.ErrorIs(t, err, ErrTrainerNotFound)

	_, err = svc.CreateBooking(trainer.ID, uuid.New(), BookingRequest{ClientName: "Alice"})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateBookingCanceledSlot(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, PermissiveTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)

	assert.NoError(t, db.Model(&slot).Update("status", models.SlotStatusCanceled).Error)

	_, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{ClientName: "Alice"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestChangeStatusValidation(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, PermissiveTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)

	_, err := svc.ChangeStatus(uuid.New(), models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	b, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{ClientName: "Alice"})
	assert.NoError(t, err)

	_, err = svc.ChangeStatus(b.ID, "rescheduled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestChangeStatusStrictPolicy(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, StrictTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)

	b, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{ClientName: "Alice"})
	assert.NoError(t, err)

	_, err = svc.ChangeStatus(b.ID, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)

	confirmed, err := svc.ChangeStatus(b.ID, models.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	completed, err := svc.ChangeStatus(b.ID, models.BookingStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)

	_, err = svc.ChangeStatus(completed.ID, models.BookingStatusPending)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestReactivatingCancelledBookingReclaimsSlot(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, PermissiveTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)
	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	b1, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{ClientName: "Alice", Date: date})
	assert.NoError(t, err)

	_, err = svc.ChangeStatus(b1.ID, models.BookingStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.SlotStatusAvailable, slotStatus(t, db, slot.ID))

	// Re-confirming the cancelled booking claims the slot back.
	_, err = svc.ChangeStatus(b1.ID, models.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.SlotStatusBooked, slotStatus(t, db, slot.ID))

	// A cancelled booking cannot come back once someone else holds the slot.
	_, err = svc.ChangeStatus(b1.ID, models.BookingStatusCancelled)
	assert.NoError(t, err)
	b2, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{ClientName: "Bob", Date: date})
	assert.NoError(t, err)
	assert.NotEqual(t, b1.ID, b2.ID)

	_, err = svc.ChangeStatus(b1.ID, models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestListClientBookings(t *testing.T) {
	db := setupBookingDB(t)
	svc := NewBookingService(db, PermissiveTransitions())
	trainer, slot := seedTrainerAndSlot(t, db)

	_, err := svc.CreateBooking(trainer.ID, slot.ID, BookingRequest{
		ClientName:    "Alice",
		ClientContact: models.ClientContact{Email: "alice@example.com"},
	})
	assert.NoError(t, err)

	mine, err := svc.ListClientBookings("alice@example.com")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "Alice", mine[0].ClientName)

	none, err := svc.ListClientBookings("bob@example.com")
	assert.NoError(t, err)
	assert.Empty(t, none)
}
