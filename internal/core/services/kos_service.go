package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/ports"
)

const kosCacheTTL = 5 * time.Minute

type CreateKosRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	PricePerMonth float64 `json:"price_per_month" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required"`
}

type UpdateKosRequest struct {
	Name          *string  `json:"name"`
	Address       *string  `json:"address"`
	PricePerMonth *float64 `json:"price_per_month"`
	Gender        *string  `json:"gender"`
}

type KosService struct {
	kosRepo     ports.KosRepository
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewKosService(kosRepo ports.KosRepository, redisClient *redis.Client, logger *zap.Logger) *KosService {
	return &KosService{
		kosRepo:     kosRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func kosCacheKey(gender domain.Gender) string {
	if gender == "" {
		return "kos:all"
	}
	return "kos:gender:" + string(gender)
}

// GetAll lists kos, optionally filtered by gender restriction. Listings are
// served from redis when the cache is warm.
func (s *KosService) GetAll(ctx context.Context, gender string) ([]domain.Kos, error) {
	g := domain.Gender(strings.ToUpper(gender))
	if gender != "" && !g.IsValid() {
		return nil, fmt.Errorf("invalid gender filter %q", gender)
	}

	key := kosCacheKey(g)
	if cached, err := s.redisClient.Get(ctx, key).Result(); err == nil {
		var list []domain.Kos
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
		s.logger.Warn("dropping malformed kos cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		s.logger.Warn("kos cache read failed", zap.String("key", key), zap.Error(err))
	}

	list, err := s.kosRepo.GetAll(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("get kos list: %w", err)
	}

	if payload, err := json.Marshal(list); err == nil {
		if err := s.redisClient.Set(ctx, key, payload, kosCacheTTL).Err(); err != nil {
			s.logger.Warn("kos cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return list, nil
}

func (s *KosService) GetByID(ctx context.Context, kosID string) (*domain.Kos, error) {
	id, err := uuid.Parse(kosID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}
	return s.kosRepo.GetByID(ctx, id)
}

func (s *KosService) GetByOwner(ctx context.Context, rctx RequestContext) ([]domain.Kos, error) {
	list, err := s.kosRepo.GetByOwnerID(ctx, rctx.UserID)
	if err != nil {
		return nil, fmt.Errorf("get owner kos: %w", err)
	}
	return list, nil
}

func (s *KosService) Create(ctx context.Context, rctx RequestContext, req CreateKosRequest) (*domain.Kos, error) {
	gender := domain.Gender(strings.ToUpper(req.Gender))
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender %q", req.Gender)
	}

	now := time.Now()
	kos := &domain.Kos{
		ID:            uuid.New(),
		OwnerID:       rctx.UserID,
		Name:          req.Name,
		Address:       req.Address,
		PricePerMonth: req.PricePerMonth,
		Gender:        gender,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.kosRepo.Create(ctx, kos); err != nil {
		return nil, fmt.Errorf("create kos: %w", err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("kos created",
		zap.String("kos_id", kos.ID.String()),
		zap.String("owner_id", rctx.UserID.String()))
	return kos, nil
}

func (s *KosService) Update(ctx context.Context, rctx RequestContext, kosID string, req UpdateKosRequest) (*domain.Kos, error) {
	kos, err := s.authorizeOwner(ctx, rctx, kosID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		kos.Name = *req.Name
	}
	if req.Address != nil {
		kos.Address = *req.Address
	}
	if req.PricePerMonth != nil {
		kos.PricePerMonth = *req.PricePerMonth
	}
	if req.Gender != nil {
		gender := domain.Gender(strings.ToUpper(*req.Gender))
		if !gender.IsValid() {
			return nil, fmt.Errorf("invalid gender %q", *req.Gender)
		}
		kos.Gender = gender
	}
	kos.UpdatedAt = time.Now()

	if err := s.kosRepo.Update(ctx, kos); err != nil {
		return nil, fmt.Errorf("update kos: %w", err)
	}

	s.invalidateCache(ctx)
	return kos, nil
}

func (s *KosService) Delete(ctx context.Context, rctx RequestContext, kosID string) error {
	kos, err := s.authorizeOwner(ctx, rctx, kosID)
	if err != nil {
		return err
	}

	if err := s.kosRepo.Delete(ctx, kos.ID); err != nil {
		return fmt.Errorf("delete kos: %w", err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("kos deleted", zap.String("kos_id", kos.ID.String()))
	return nil
}

func (s *KosService) AddImage(ctx context.Context, rctx RequestContext, kosID, fileURL string) (*domain.KosImage, error) {
	kos, err := s.authorizeOwner(ctx, rctx, kosID)
	if err != nil {
		return nil, err
	}

	image := &domain.KosImage{
		ID:      uuid.New(),
		KosID:   kos.ID,
		FileURL: fileURL,
	}

	if err := s.kosRepo.AddImage(ctx, image); err != nil {
		return nil, fmt.Errorf("add kos image: %w", err)
	}

	s.invalidateCache(ctx)
	return image, nil
}

func (s *KosService) DeleteImage(ctx context.Context, rctx RequestContext, kosID, imageID string) error {
	if _, err := s.authorizeOwner(ctx, rctx, kosID); err != nil {
		return err
	}

	id, err := uuid.Parse(imageID)
	if err != nil {
		return domain.ErrKosNotFound
	}

	if err := s.kosRepo.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("delete kos image: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *KosService) GetFacilities(ctx context.Context, kosID string) ([]domain.KosFacility, error) {
	id, err := uuid.Parse(kosID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}

	facilities, err := s.kosRepo.GetFacilities(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get kos facilities: %w", err)
	}
	return facilities, nil
}

func (s *KosService) AddFacility(ctx context.Context, rctx RequestContext, kosID, facility string) (*domain.KosFacility, error) {
	kos, err := s.authorizeOwner(ctx, rctx, kosID)
	if err != nil {
		return nil, err
	}

	f := &domain.KosFacility{
		ID:       uuid.New(),
		KosID:    kos.ID,
		Facility: facility,
	}

	if err := s.kosRepo.AddFacility(ctx, f); err != nil {
		return nil, fmt.Errorf("add kos facility: %w", err)
	}

	s.invalidateCache(ctx)
	return f, nil
}

func (s *KosService) UpdateFacility(ctx context.Context, rctx RequestContext, kosID, facilityID, facility string) (*domain.KosFacility, error) {
	kos, err := s.authorizeOwner(ctx, rctx, kosID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}

	f := &domain.KosFacility{ID: id, KosID: kos.ID, Facility: facility}
	if err := s.kosRepo.UpdateFacility(ctx, f); err != nil {
		return nil, fmt.Errorf("update kos facility: %w", err)
	}

	s.invalidateCache(ctx)
	return f, nil
}

func (s *KosService) DeleteFacility(ctx context.Context, rctx RequestContext, kosID, facilityID string) error {
	if _, err := s.authorizeOwner(ctx, rctx, kosID); err != nil {
		return err
	}

	id, err := uuid.Parse(facilityID)
	if err != nil {
		return domain.ErrKosNotFound
	}

	if err := s.kosRepo.DeleteFacility(ctx, id); err != nil {
		return fmt.Errorf("delete kos facility: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

// authorizeOwner loads the kos and checks the caller owns it. Admins pass.
func (s *KosService) authorizeOwner(ctx context.Context, rctx RequestContext, kosID string) (*domain.Kos, error) {
	id, err := uuid.Parse(kosID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}

	kos, err := s.kosRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if kos.OwnerID != rctx.UserID && !rctx.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}

	return kos, nil
}

func (s *KosService) invalidateCache(ctx context.Context) {
	keys := []string{
		kosCacheKey(""),
		kosCacheKey(domain.GenderMale),
		kosCacheKey(domain.GenderFemale),
		kosCacheKey(domain.GenderAll),
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("kos cache invalidation failed", zap.Error(err))
	}
}
