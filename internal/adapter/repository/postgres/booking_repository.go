package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (id, kos_id, user_id, start_date, end_date, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.KosID,
		booking.UserID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT b.id, b.kos_id, b.user_id, b.start_date, b.end_date, b.status, b.created_at, b.updated_at,
		k.id, k.user_id, k.name, k.address, k.price_per_month, k.gender,
		u.id, u.name, u.email, u.phone, u.role
	FROM bookings b
	JOIN kos k ON k.id = b.kos_id
	JOIN users u ON u.id = b.user_id
	WHERE b.id = $1
	`

	var booking domain.Booking
	var kos domain.Kos
	var user domain.User

	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&booking.ID,
		&booking.KosID,
		&booking.UserID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&kos.ID,
		&kos.OwnerID,
		&kos.Name,
		&kos.Address,
		&kos.PricePerMonth,
		&kos.Gender,
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	booking.Kos = &kos
	booking.User = &user

	return &booking, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	query := bookingListQuery + ` WHERE b.user_id = $1`

	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	query := bookingListQuery + ` WHERE k.user_id = $1`

	return r.queryBookings(ctx, query, ownerID)
}

// UpdateStatus transitions the booking only while its stored status still
// equals prev. Losing a concurrent race means the status already reached a
// terminal state, which the state machine forbids leaving.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, prev, next domain.BookingStatus) error {
	query := `
	UPDATE bookings
	SET status = $1, updated_at = $2
	WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, next, time.Now(), bookingID, prev)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrIllegalTransition
	}

	return nil
}

func (r *BookingRepository) GetHistoryByOwner(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]domain.Booking, error) {
	query := bookingListQuery + ` WHERE k.user_id = $1`
	args := []interface{}{ownerID}

	if from != nil && to != nil {
		query += ` AND b.created_at >= $2 AND b.created_at < $3`
		args = append(args, *from, *to)
	}

	query += ` ORDER BY b.created_at DESC`

	return r.queryBookings(ctx, query, args...)
}

const bookingListQuery = `
	SELECT b.id, b.kos_id, b.user_id, b.start_date, b.end_date, b.status, b.created_at, b.updated_at,
		k.id, k.user_id, k.name, k.address, k.price_per_month, k.gender,
		u.id, u.name, u.email, u.phone, u.role
	FROM bookings b
	JOIN kos k ON k.id = b.kos_id
	JOIN users u ON u.id = b.user_id`

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		var kos domain.Kos
		var user domain.User

		if err := rows.Scan(
			&booking.ID,
			&booking.KosID,
			&booking.UserID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&kos.ID,
			&kos.OwnerID,
			&kos.Name,
			&kos.Address,
			&kos.PricePerMonth,
			&kos.Gender,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Role,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		booking.Kos = &kos
		booking.User = &user
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	if err := r.attachKosImages(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// attachKosImages fills in the image metadata for every kos referenced by the
// given bookings with a single query.
func (r *BookingRepository) attachKosImages(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]bool, len(bookings))
	var kosIDs []uuid.UUID
	for _, b := range bookings {
		if !seen[b.KosID] {
			seen[b.KosID] = true
			kosIDs = append(kosIDs, b.KosID)
		}
	}

	query := `
	SELECT id, kos_id, file_url
	FROM kos_images
	WHERE kos_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(kosIDs))
	if err != nil {
		return fmt.Errorf("query kos images: %w", err)
	}

	defer rows.Close()

	imagesByKos := make(map[uuid.UUID][]domain.KosImage)
	for rows.Next() {
		var img domain.KosImage
		if err := rows.Scan(&img.ID, &img.KosID, &img.FileURL); err != nil {
			return fmt.Errorf("scan kos image: %w", err)
		}
		imagesByKos[img.KosID] = append(imagesByKos[img.KosID], img)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate kos images: %w", err)
	}

	for i := range bookings {
		if bookings[i].Kos != nil {
			bookings[i].Kos.Images = imagesByKos[bookings[i].KosID]
		}
	}

	return nil
}
