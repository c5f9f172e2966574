package receipt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/adapter/receipt"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:       uuid.New(),
		CheckIn:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		Status:   domain.BookingAccept,
		Kos: &domain.Kos{
			Name:          "Kos Melati",
			Address:       "Jl. Kenanga 12, Bandung",
			Gender:        domain.GenderAll,
			PricePerMonth: 1_500_000,
		},
		User: &domain.User{
			Name:  "Budi Santoso",
			Email: "budi@example.com",
			Phone: "081234567890",
		},
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	renderer := receipt.NewPDFRenderer()

	data, err := renderer.Render(testBooking())

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_MissingJoins(t *testing.T) {
	renderer := receipt.NewPDFRenderer()

	booking := testBooking()
	booking.Kos = nil

	_, err := renderer.Render(booking)
	assert.Error(t, err)

	booking = testBooking()
	booking.User = nil

	_, err = renderer.Render(booking)
	assert.Error(t, err)
}

func TestRender_InvalidDateRange(t *testing.T) {
	renderer := receipt.NewPDFRenderer()

	booking := testBooking()
	booking.CheckOut = booking.CheckIn

	_, err := renderer.Render(booking)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
