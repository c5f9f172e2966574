package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
	INSERT INTO reviews (id, kos_id, user_id, comment, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.KosID, review.UserID, review.Comment, review.CreatedAt, review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, reviewID uuid.UUID) (*domain.Review, error) {
	query := `
	SELECT id, kos_id, user_id, comment, reply, created_at, updated_at
	FROM reviews
	WHERE id = $1
	`

	var review domain.Review
	var reply sql.NullString

	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
		&review.ID,
		&review.KosID,
		&review.UserID,
		&review.Comment,
		&reply,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review by id: %w", err)
	}

	if reply.Valid {
		review.Reply = &reply.String
	}

	return &review, nil
}

func (r *ReviewRepository) GetByKosID(ctx context.Context, kosID uuid.UUID) ([]domain.Review, error) {
	query := `
	SELECT r.id, r.kos_id, r.user_id, r.comment, r.reply, r.created_at, r.updated_at,
		u.id, u.name, u.email, u.role
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	WHERE r.kos_id = $1
	ORDER BY r.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, kosID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		var user domain.User
		var reply sql.NullString

		if err := rows.Scan(
			&review.ID,
			&review.KosID,
			&review.UserID,
			&review.Comment,
			&reply,
			&review.CreatedAt,
			&review.UpdatedAt,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}

		if reply.Valid {
			review.Reply = &reply.String
		}
		review.User = &user
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *ReviewRepository) UpdateReply(ctx context.Context, reviewID uuid.UUID, reply string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET reply = $1, updated_at = $2 WHERE id = $3`,
		reply, time.Now(), reviewID)
	if err != nil {
		return fmt.Errorf("update review reply: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update review reply: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrReviewNotFound
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrReviewNotFound
	}

	return nil
}
