package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender restricts who may rent a kos.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderAll    Gender = "ALL"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAll:
		return true
	}
	return false
}

// Kos is a boarding house listed for rent by one owner.
type Kos struct {
	ID            uuid.UUID     `json:"id"`
	OwnerID       uuid.UUID     `json:"user_id"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	PricePerMonth float64       `json:"price_per_month"`
	Gender        Gender        `json:"gender"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Images        []KosImage    `json:"images,omitempty"`
	Facilities    []KosFacility `json:"facilities,omitempty"`
	Owner         *User         `json:"owner,omitempty"`
}

type KosImage struct {
	ID      uuid.UUID `json:"id"`
	KosID   uuid.UUID `json:"kos_id"`
	FileURL string    `json:"file"`
}

type KosFacility struct {
	ID       uuid.UUID `json:"id"`
	KosID    uuid.UUID `json:"kos_id"`
	Facility string    `json:"facility"`
}
