package services

import (
	"errors"
	"time"

	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrSlotNotFound         = errors.New("time slot not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrSlotUnavailable      = errors.New("this time slot is no longer available")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

type BookingService struct {
	db          *gorm.DB
	transitions TransitionTable
}

func NewBookingService(db *gorm.DB, transitions TransitionTable) *BookingService {
	return &BookingService{db: db, transitions: transitions}
}

type BookingRequest struct {
	ClientName    string
	ClientContact models.ClientContact
	Date          time.Time
}

// CreateBooking claims a trainer's slot for a calendar date. The slot row is
// locked FOR UPDATE for the whole transaction, so two concurrent requests for
// the same slot serialize and the loser sees it as unavailable.
func (s *BookingService) CreateBooking(trainerID, slotID uuid.UUID, req BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var trainer models.Trainer
		if err := tx.First(&trainer, "id = ?", trainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrainerNotFound
			}
			return err
		}

		var slot models.Slot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ? AND trainer_id = ?", slotID, trainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if slot.Status == models.SlotStatusCanceled {
			return ErrSlotUnavailable
		}

		active, err := countActiveBookings(tx, slot.ID, uuid.Nil)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrSlotUnavailable
		}

		booking = models.Booking{
			TrainerID:     trainer.ID,
			SlotID:        slot.ID,
			ClientName:    req.ClientName,
			ClientContact: req.ClientContact,
			Date:          req.Date,
			Status:        models.BookingStatusPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		slot.Status = models.SlotStatusBooked
		return tx.Save(&slot).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetBooking(booking.ID)
}

// ChangeStatus moves a booking to newStatus. Cancelling releases the slot
// back to available unless another active booking still claims it; moving a
// cancelled booking back to an active status re-claims the slot.
func (s *BookingService) ChangeStatus(bookingID uuid.UUID, newStatus string) (*models.Booking, error) {
	if !models.IsBookingStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		oldStatus := booking.Status
		if !s.transitions.Allowed(oldStatus, newStatus) {
			return ErrTransitionNotAllowed
		}
		if oldStatus == newStatus {
			return nil
		}

		booking.Status = newStatus
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		wasActive := oldStatus != models.BookingStatusCancelled
		isActive := newStatus != models.BookingStatusCancelled
		switch {
		case wasActive && !isActive:
			return releaseSlot(tx, booking.SlotID)
		case !wasActive && isActive:
			return reclaimSlot(tx, booking.SlotID, booking.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBooking(bookingID)
}

// DeleteBooking removes a booking and releases its slot if no other active
// booking claims it.
func (s *BookingService) DeleteBooking(bookingID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return err
		}

		return releaseSlot(tx, booking.SlotID)
	})
}

func (s *BookingService) GetBooking(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Trainer").Preload("Slot").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Trainer").Preload("Slot").
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

// ListClientBookings returns the bookings made with a given contact email,
// newest first.
func (s *BookingService) ListClientBookings(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Trainer").Preload("Slot").
		Where("contact_email = ?", email).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

func countActiveBookings(tx *gorm.DB, slotID, excludeBookingID uuid.UUID) (int64, error) {
	query := tx.Model(&models.Booking{}).
		Where("slot_id = ? AND status <> ?", slotID, models.BookingStatusCancelled)
	if excludeBookingID != uuid.Nil {
		query = query.Where("id <> ?", excludeBookingID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// releaseSlot sets a booked slot back to available when no active booking
// references it anymore. Trainer-canceled slots are left untouched.
func releaseSlot(tx *gorm.DB, slotID uuid.UUID) error {
	var slot models.Slot
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if slot.Status != models.SlotStatusBooked {
		return nil
	}

	active, err := countActiveBookings(tx, slot.ID, uuid.Nil)
	if err != nil {
		return err
	}
	if active > 0 {
		return nil
	}

	slot.Status = models.SlotStatusAvailable
	return tx.Save(&slot).Error
}

// reclaimSlot re-marks a slot as booked when a cancelled booking becomes
// active again, failing if another active booking took the slot meanwhile.
func reclaimSlot(tx *gorm.DB, slotID, bookingID uuid.UUID) error {
	var slot models.Slot
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}

	others, err := countActiveBookings(tx, slot.ID, bookingID)
	if err != nil {
		return err
	}
	if others > 0 || slot.Status == models.SlotStatusCanceled {
		return ErrSlotUnavailable
	}

	slot.Status = models.SlotStatusBooked
	return tx.Save(&slot).Error
}
