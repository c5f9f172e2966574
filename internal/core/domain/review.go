package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a guest comment on a kos, optionally answered by the owner.
type Review struct {
	ID        uuid.UUID `json:"id"`
	KosID     uuid.UUID `json:"kos_id"`
	UserID    uuid.UUID `json:"user_id"`
	Comment   string    `json:"comment"`
	Reply     *string   `json:"reply,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"user,omitempty"`
}
