package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", date(2024, time.January, 1), date(2024, time.January, 3), 2},
		{"single night", date(2024, time.January, 1), date(2024, time.January, 2), 1},
		{"across month boundary", date(2024, time.January, 30), date(2024, time.February, 2), 3},
		{"across year boundary", date(2023, time.December, 30), date(2024, time.January, 2), 3},
		{"leap february", date(2024, time.February, 28), date(2024, time.March, 1), 2},
		{"non-leap february", date(2023, time.February, 28), date(2023, time.March, 1), 1},
		{"full month stay", date(2024, time.March, 1), date(2024, time.April, 1), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := pricing.Nights(tt.checkIn, tt.checkOut)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, nights)
		})
	}
}

func TestNights_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"same day", date(2024, time.January, 1), date(2024, time.January, 1)},
		{"check-out before check-in", date(2024, time.January, 3), date(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.Nights(tt.checkIn, tt.checkOut)
			assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		})
	}
}

func TestFlatNights_LinearInNights(t *testing.T) {
	// rate=1,500,000/month, 2024-03-01 -> 2024-03-11: 10 nights.
	total, err := pricing.FlatNights(1_500_000, date(2024, time.March, 1), date(2024, time.March, 11))
	assert.NoError(t, err)
	assert.Equal(t, 15_000_000.0, total)

	total, err = pricing.FlatNights(300_000, date(2024, time.January, 1), date(2024, time.January, 2))
	assert.NoError(t, err)
	assert.Equal(t, 300_000.0, total)
}

func TestFlatNights_InvalidRange(t *testing.T) {
	_, err := pricing.FlatNights(1_500_000, date(2024, time.March, 11), date(2024, time.March, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestProRated_RespectsMonthLength(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		checkIn  time.Time
		checkOut time.Time
		want     float64
	}{
		// Full 31-day month at the monthly rate costs exactly the rate.
		{"31-day month full stay", 300_000, date(2024, time.January, 1), date(2024, time.February, 1), 300_000},
		// Non-leap February, 28 nights.
		{"28-day month full stay", 300_000, date(2023, time.February, 1), date(2023, time.March, 1), 300_000},
		// Leap February, 29 nights.
		{"29-day month full stay", 300_000, date(2024, time.February, 1), date(2024, time.March, 1), 300_000},
		// Exact daily rate: 930,000 over 31 days is 30,000/night.
		{"partial stay exact daily rate", 930_000, date(2024, time.January, 1), date(2024, time.January, 11), 300_000},
		// Fractional daily rate rounds the total up.
		{"partial stay rounds up", 300_000, date(2024, time.January, 1), date(2024, time.January, 11), 96_775},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := pricing.ProRated(tt.rate, tt.checkIn, tt.checkOut)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestStrategiesDiverge(t *testing.T) {
	// The two strategies intentionally disagree: ten nights at 1.5M/month
	// cost 15M flat but roughly 483.9K pro-rated in a 31-day month.
	checkIn, checkOut := date(2024, time.March, 1), date(2024, time.March, 11)

	flat, err := pricing.FlatNights(1_500_000, checkIn, checkOut)
	assert.NoError(t, err)

	proRated, err := pricing.ProRated(1_500_000, checkIn, checkOut)
	assert.NoError(t, err)

	assert.Equal(t, 15_000_000.0, flat)
	assert.Equal(t, 483_871.0, proRated)
	assert.NotEqual(t, flat, proRated)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, pricing.DaysInMonth(date(2024, time.January, 15)))
	assert.Equal(t, 29, pricing.DaysInMonth(date(2024, time.February, 1)))
	assert.Equal(t, 28, pricing.DaysInMonth(date(2023, time.February, 1)))
	assert.Equal(t, 30, pricing.DaysInMonth(date(2024, time.April, 30)))
}
