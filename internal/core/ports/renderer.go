package ports

import "github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"

// ReceiptRenderer turns a booking joined with its kos and guest into a
// printable document. Implementations must not touch the network or the
// database.
type ReceiptRenderer interface {
	Render(booking *domain.Booking) ([]byte, error)
}
