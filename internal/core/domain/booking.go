package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending BookingStatus = "PENDING"
	BookingAccept  BookingStatus = "ACCEPT"
	BookingReject  BookingStatus = "REJECT"
)

// validTransitions defines the booking status state machine. ACCEPT and
// REJECT are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending: {BookingAccept, BookingReject},
	BookingAccept:  {},
	BookingReject:  {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	return ok && len(allowed) == 0
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Booking is a guest reservation request against a kos for a date range.
type Booking struct {
	ID        uuid.UUID     `json:"id"`
	KosID     uuid.UUID     `json:"kos_id"`
	UserID    uuid.UUID     `json:"user_id"`
	CheckIn   time.Time     `json:"start_date"`
	CheckOut  time.Time     `json:"end_date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Joined summaries, populated by the repository where requested.
	Kos  *Kos  `json:"kos,omitempty"`
	User *User `json:"user,omitempty"`
}

// Transition checks that requesterID may move the booking to next.
// Only the owner of the booked kos has transition authority, and only the
// transitions in validTransitions are legal. The booking must carry its
// joined Kos.
func (b *Booking) Transition(requesterID uuid.UUID, next BookingStatus) error {
	if b.Kos == nil || b.Kos.OwnerID != requesterID {
		return ErrNotAuthorized
	}
	if !next.IsValid() || !b.Status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	return nil
}
