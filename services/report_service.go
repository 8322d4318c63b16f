package services

import (
	"strings"
	"time"

	"github.com/HarshanaWAJ/GymApp/models"
)

// StatusCounts is a fixed-shape per-status counter. Explicit fields instead
// of a string-keyed map mean an unrecognized status can never silently fail
// to increment anything.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

func (c *StatusCounts) add(status string) {
	switch status {
	case models.BookingStatusPending:
		c.Pending++
	case models.BookingStatusConfirmed:
		c.Confirmed++
	case models.BookingStatusCancelled:
		c.Cancelled++
	case models.BookingStatusCompleted:
		c.Completed++
	}
}

func (c StatusCounts) Total() int {
	return c.Pending + c.Confirmed + c.Cancelled + c.Completed
}

type MonthBucket struct {
	Month  string       `json:"month"`
	Label  string       `json:"monthLabel"`
	Counts StatusCounts `json:"counts"`
}

// MonthlyStatusHistogram buckets bookings per status over the monthCount
// calendar months ending at now's month, oldest first. Months with no
// bookings still get a zeroed bucket.
func MonthlyStatusHistogram(bookings []models.Booking, monthCount int, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, monthCount)
	index := make(map[string]int, monthCount)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := monthCount - 1; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		index[key] = len(buckets)
		buckets = append(buckets, MonthBucket{Month: key, Label: m.Format("Jan 2006")})
	}

	for _, b := range bookings {
		ts := bookingTimestamp(b)
		if ts.IsZero() {
			continue
		}
		if idx, ok := index[ts.Format("2006-01")]; ok {
			buckets[idx].Counts.add(b.Status)
		}
	}
	return buckets
}

// CurrentMonthStatusCounts restricts the per-status counts to bookings whose
// timestamp falls in now's calendar month.
func CurrentMonthStatusCounts(bookings []models.Booking, now time.Time) StatusCounts {
	var counts StatusCounts
	key := now.Format("2006-01")
	for _, b := range bookings {
		ts := bookingTimestamp(b)
		if ts.IsZero() {
			continue
		}
		if ts.Format("2006-01") == key {
			counts.add(b.Status)
		}
	}
	return counts
}

func bookingTimestamp(b models.Booking) time.Time {
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt
	}
	return b.UpdatedAt
}

// UpcomingWithinWindow returns bookings whose appointment instant is strictly
// in the future and no more than windowMinutes away. Bookings without a date
// or a slot start time are skipped.
func UpcomingWithinWindow(bookings []models.Booking, windowMinutes int, now time.Time) []models.Booking {
	window := time.Duration(windowMinutes) * time.Minute
	var upcoming []models.Booking
	for _, b := range bookings {
		at, ok := AppointmentInstant(b)
		if !ok {
			continue
		}
		diff := at.Sub(now)
		if diff > 0 && diff <= window {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming
}

// AppointmentInstant combines the booking's calendar date with its slot's
// wall-clock "HH:MM" start time.
func AppointmentInstant(b models.Booking) (time.Time, bool) {
	if b.Date.IsZero() || b.Slot.StartTime == "" {
		return time.Time{}, false
	}
	start, err := time.Parse("15:04", b.Slot.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(),
		start.Hour(), start.Minute(), 0, 0, b.Date.Location()), true
}

// FilterByClientNameSubstring matches client names case-insensitively. An
// empty or blank term returns the input unchanged.
func FilterByClientNameSubstring(bookings []models.Booking, term string) []models.Booking {
	if strings.TrimSpace(term) == "" {
		return bookings
	}
	needle := strings.ToLower(term)
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.ClientName), needle) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
