package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/ports"
)

type ReviewService struct {
	reviewRepo ports.ReviewRepository
	kosRepo    ports.KosRepository
	logger     *zap.Logger
}

func NewReviewService(reviewRepo ports.ReviewRepository, kosRepo ports.KosRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		kosRepo:    kosRepo,
		logger:     logger,
	}
}

func (s *ReviewService) GetKosReviews(ctx context.Context, kosID string) ([]domain.Review, error) {
	id, err := uuid.Parse(kosID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}

	reviews, err := s.reviewRepo.GetByKosID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get kos reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) AddReview(ctx context.Context, rctx RequestContext, kosID, comment string) (*domain.Review, error) {
	id, err := uuid.Parse(kosID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}

	if _, err := s.kosRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &domain.Review{
		ID:        uuid.New(),
		KosID:     id,
		UserID:    rctx.UserID,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review added",
		zap.String("review_id", review.ID.String()),
		zap.String("kos_id", id.String()))
	return review, nil
}

// ReplyReview records the kos owner's answer to a review.
func (s *ReviewService) ReplyReview(ctx context.Context, rctx RequestContext, reviewID, reply string) (*domain.Review, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kos, err := s.kosRepo.GetByID(ctx, review.KosID)
	if err != nil {
		return nil, err
	}

	if kos.OwnerID != rctx.UserID {
		return nil, domain.ErrNotAuthorized
	}

	if err := s.reviewRepo.UpdateReply(ctx, id, reply); err != nil {
		return nil, fmt.Errorf("reply review: %w", err)
	}

	review.Reply = &reply
	review.UpdatedAt = time.Now()
	return review, nil
}

// DeleteReview removes a review. Only the author or an admin may delete.
func (s *ReviewService) DeleteReview(ctx context.Context, rctx RequestContext, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != rctx.UserID && !rctx.IsAdmin() {
		return domain.ErrNotAuthorized
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.Info("review deleted", zap.String("review_id", id.String()))
	return nil
}
