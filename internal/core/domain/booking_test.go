package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, domain.BookingPending.CanTransitionTo(domain.BookingAccept))
	assert.True(t, domain.BookingPending.CanTransitionTo(domain.BookingReject))

	// Terminal states allow nothing, including a same-state no-op.
	for _, terminal := range []domain.BookingStatus{domain.BookingAccept, domain.BookingReject} {
		assert.False(t, terminal.CanTransitionTo(domain.BookingAccept))
		assert.False(t, terminal.CanTransitionTo(domain.BookingReject))
		assert.False(t, terminal.CanTransitionTo(domain.BookingPending))
		assert.False(t, terminal.CanTransitionTo(terminal))
	}

	assert.False(t, domain.BookingPending.CanTransitionTo(domain.BookingPending))
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.BookingPending.IsTerminal())
	assert.True(t, domain.BookingAccept.IsTerminal())
	assert.True(t, domain.BookingReject.IsTerminal())
	assert.False(t, domain.BookingStatus("NONSENSE").IsValid())
}

func TestBooking_Transition_OwnerOnly(t *testing.T) {
	ownerID := uuid.New()
	booking := &domain.Booking{
		Status: domain.BookingPending,
		Kos:    &domain.Kos{OwnerID: ownerID},
	}

	err := booking.Transition(uuid.New(), domain.BookingAccept)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	err = booking.Transition(ownerID, domain.BookingAccept)
	assert.NoError(t, err)
}

func TestBooking_Transition_TerminalIsImmutable(t *testing.T) {
	ownerID := uuid.New()
	booking := &domain.Booking{
		Status: domain.BookingAccept,
		Kos:    &domain.Kos{OwnerID: ownerID},
	}

	err := booking.Transition(ownerID, domain.BookingReject)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestBooking_Transition_UnknownStatus(t *testing.T) {
	ownerID := uuid.New()
	booking := &domain.Booking{
		Status: domain.BookingPending,
		Kos:    &domain.Kos{OwnerID: ownerID},
	}

	err := booking.Transition(ownerID, domain.BookingStatus("CANCELLED"))
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestBooking_Transition_MissingKosJoin(t *testing.T) {
	booking := &domain.Booking{Status: domain.BookingPending}

	err := booking.Transition(uuid.New(), domain.BookingAccept)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}
