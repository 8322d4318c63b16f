package services

import (
	"testing"
	"time"

	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/stretchr/testify/assert"
)

func bookingAt(created time.Time, status string) models.Booking {
	return models.Booking{Status: status, CreatedAt: created}
}

func TestMonthlyStatusHistogramBucketCountAndOrder(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	buckets := MonthlyStatusHistogram(nil, 6, now)

	assert.Len(t, buckets, 6)
	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.Equal(t, "2024-06", buckets[5].Month)
	assert.Equal(t, "Jan 2024", buckets[0].Label)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Counts.Total())
	}
}

func TestMonthlyStatusHistogramCounts(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		bookingAt(time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC), models.BookingStatusPending),
		bookingAt(time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC), models.BookingStatusConfirmed),
		bookingAt(time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC), models.BookingStatusCompleted),
		bookingAt(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC), models.BookingStatusPending),
		// Outside the 6-month range, must be ignored.
		bookingAt(time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC), models.BookingStatusPending),
	}

	buckets := MonthlyStatusHistogram(bookings, 6, now)

	assert.Equal(t, 1, buckets[0].Counts.Pending)   // Jan
	assert.Equal(t, 0, buckets[1].Counts.Total())   // Feb
	assert.Equal(t, 1, buckets[2].Counts.Confirmed) // Mar
	assert.Equal(t, 1, buckets[2].Counts.Completed)
	assert.Equal(t, 0, buckets[3].Counts.Total()) // Apr
	assert.Equal(t, 0, buckets[4].Counts.Total()) // May
	assert.Equal(t, 1, buckets[5].Counts.Pending) // Jun

	assert.Equal(t, CurrentMonthStatusCounts(bookings, now), buckets[5].Counts)
}

func TestMonthlyStatusHistogramTimestampFallback(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	updatedOnly := models.Booking{
		Status:    models.BookingStatusConfirmed,
		UpdatedAt: time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC),
	}
	noTimestamps := models.Booking{Status: models.BookingStatusPending}

	buckets := MonthlyStatusHistogram([]models.Booking{updatedOnly, noTimestamps}, 6, now)

	assert.Equal(t, 1, buckets[4].Counts.Confirmed) // May, via UpdatedAt
	total := 0
	for _, b := range buckets {
		total += b.Counts.Total()
	}
	assert.Equal(t, 1, total)
}

func TestCurrentMonthStatusCounts(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		bookingAt(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC), models.BookingStatusPending),
		bookingAt(time.Date(2024, time.June, 14, 9, 0, 0, 0, time.UTC), models.BookingStatusCancelled),
		bookingAt(time.Date(2024, time.May, 30, 9, 0, 0, 0, time.UTC), models.BookingStatusPending),
	}

	counts := CurrentMonthStatusCounts(bookings, now)

	assert.Equal(t, StatusCounts{Pending: 1, Cancelled: 1}, counts)
}

func upcomingBooking(date time.Time, startTime string) models.Booking {
	return models.Booking{
		Status: models.BookingStatusConfirmed,
		Date:   date,
		Slot:   models.Slot{Day: "Monday", StartTime: startTime, EndTime: "23:59"},
	}
}

func TestUpcomingWithinWindow(t *testing.T) {
	now := time.Date(2024, time.June, 10, 8, 30, 0, 0, time.UTC)
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	soon := upcomingBooking(day, "09:00")         // 30 min ahead
	boundary := upcomingBooking(day, "09:30")     // exactly 60 min ahead
	tooFar := upcomingBooking(day, "10:00")       // 90 min ahead
	past := upcomingBooking(day, "08:00")         // already started
	rightNow := upcomingBooking(day, "08:30")     // not strictly future
	noDate := upcomingBooking(time.Time{}, "09:00")
	noStart := upcomingBooking(day, "")
	badStart := upcomingBooking(day, "9am")

	got := UpcomingWithinWindow([]models.Booking{
		soon, boundary, tooFar, past, rightNow, noDate, noStart, badStart,
	}, 60, now)

	assert.Len(t, got, 2)
	assert.Equal(t, "09:00", got[0].Slot.StartTime)
	assert.Equal(t, "09:30", got[1].Slot.StartTime)
}

func TestAppointmentInstant(t *testing.T) {
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	b := upcomingBooking(day, "09:15")

	at, ok := AppointmentInstant(b)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 10, 9, 15, 0, 0, time.UTC), at)

	_, ok = AppointmentInstant(upcomingBooking(day, "not-a-time"))
	assert.False(t, ok)
}

func TestFilterByClientNameSubstring(t *testing.T) {
	bookings := []models.Booking{
		{ClientName: "Alice"},
		{ClientName: "Bob"},
		{ClientName: "Natalie"},
	}

	assert.Equal(t, bookings, FilterByClientNameSubstring(bookings, ""))
	assert.Equal(t, bookings, FilterByClientNameSubstring(bookings, "   "))

	got := FilterByClientNameSubstring(bookings, "ALI")
	assert.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].ClientName)
	assert.Equal(t, "Natalie", got[1].ClientName)

	assert.Empty(t, FilterByClientNameSubstring(bookings, "zz"))
}
