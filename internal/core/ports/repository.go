package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByID returns the booking joined with its kos and guest.
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error)
	// UpdateStatus applies the transition only while the stored status still
	// equals prev. A concurrent update that got there first surfaces as
	// domain.ErrIllegalTransition.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, prev, next domain.BookingStatus) error
	// GetHistoryByOwner returns the owner's bookings newest-first, optionally
	// restricted to created_at in [from, to).
	GetHistoryByOwner(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]domain.Booking, error)
}

type KosRepository interface {
	Create(ctx context.Context, kos *domain.Kos) error
	GetByID(ctx context.Context, kosID uuid.UUID) (*domain.Kos, error)
	GetAll(ctx context.Context, gender domain.Gender) ([]domain.Kos, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Kos, error)
	Update(ctx context.Context, kos *domain.Kos) error
	Delete(ctx context.Context, kosID uuid.UUID) error

	AddImage(ctx context.Context, image *domain.KosImage) error
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
	GetFacilities(ctx context.Context, kosID uuid.UUID) ([]domain.KosFacility, error)
	AddFacility(ctx context.Context, facility *domain.KosFacility) error
	UpdateFacility(ctx context.Context, facility *domain.KosFacility) error
	DeleteFacility(ctx context.Context, facilityID uuid.UUID) error
}

type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, reviewID uuid.UUID) (*domain.Review, error)
	GetByKosID(ctx context.Context, kosID uuid.UUID) ([]domain.Review, error)
	UpdateReply(ctx context.Context, reviewID uuid.UUID, reply string) error
	Delete(ctx context.Context, reviewID uuid.UUID) error
}
