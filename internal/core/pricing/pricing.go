// Package pricing holds the stay-length and price arithmetic for bookings.
//
// Two strategies coexist: FlatNights at booking creation and ProRated at
// receipt time. They produce different totals for the same booking on any
// month shorter than 31 days. That mismatch is inherited product behavior;
// do not unify the call sites without a product decision.
package pricing

import (
	"math"
	"time"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

// Nights returns the stay length as the ceiling of the whole-day difference
// between check-in and check-out.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, domain.ErrInvalidDateRange
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24)), nil
}

// FlatNights is the booking-creation strategy: one monthly rate charged per
// night of the stay.
func FlatNights(ratePerMonth float64, checkIn, checkOut time.Time) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return ratePerMonth * float64(nights), nil
}

// ProRated is the receipt-time strategy: the monthly rate is spread over the
// actual length of the check-in month and charged per night, rounded up.
func ProRated(ratePerMonth float64, checkIn, checkOut time.Time) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	dailyRate := ratePerMonth / float64(DaysInMonth(checkIn))
	return math.Ceil(dailyRate * float64(nights)), nil
}

// DaysInMonth returns the number of days in the calendar month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
