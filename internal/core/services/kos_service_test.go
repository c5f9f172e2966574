package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/ports/mocks"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
)

func TestKosGetAll_CacheMiss(t *testing.T) {
	kosRepo := mocks.NewKosRepository(t)
	redisClient, redisMock := redismock.NewClientMock()

	svc := services.NewKosService(kosRepo, redisClient, zap.NewNop())

	ctx := context.Background()
	list := []domain.Kos{
		{ID: uuid.New(), Name: "Kos Melati", Gender: domain.GenderAll, PricePerMonth: 1_200_000},
	}
	payload, err := json.Marshal(list)
	assert.NoError(t, err)

	redisMock.ExpectGet("kos:all").RedisNil()
	kosRepo.On("GetAll", ctx, domain.Gender("")).Return(list, nil)
	redisMock.ExpectSet("kos:all", payload, 5*time.Minute).SetVal("OK")

	got, err := svc.GetAll(ctx, "")

	assert.NoError(t, err)
	assert.Equal(t, list, got)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestKosGetAll_CacheHit(t *testing.T) {
	kosRepo := mocks.NewKosRepository(t)
	redisClient, redisMock := redismock.NewClientMock()

	svc := services.NewKosService(kosRepo, redisClient, zap.NewNop())

	list := []domain.Kos{
		{ID: uuid.New(), Name: "Kos Mawar", Gender: domain.GenderFemale, PricePerMonth: 900_000},
	}
	payload, err := json.Marshal(list)
	assert.NoError(t, err)

	redisMock.ExpectGet("kos:gender:FEMALE").SetVal(string(payload))

	got, err := svc.GetAll(context.Background(), "female")

	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, list[0].ID, got[0].ID)
		assert.Equal(t, list[0].Name, got[0].Name)
	}

	// The repository is never touched on a warm cache.
	kosRepo.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestKosGetAll_InvalidGenderFilter(t *testing.T) {
	kosRepo := mocks.NewKosRepository(t)
	redisClient, _ := redismock.NewClientMock()

	svc := services.NewKosService(kosRepo, redisClient, zap.NewNop())

	_, err := svc.GetAll(context.Background(), "unisex")
	assert.Error(t, err)
}

func TestKosCreate_InvalidatesCache(t *testing.T) {
	kosRepo := mocks.NewKosRepository(t)
	redisClient, redisMock := redismock.NewClientMock()

	svc := services.NewKosService(kosRepo, redisClient, zap.NewNop())

	ctx := context.Background()
	ownerID := uuid.New()

	kosRepo.On("Create", ctx, mock.AnythingOfType("*domain.Kos")).Return(nil)
	redisMock.ExpectDel("kos:all", "kos:gender:MALE", "kos:gender:FEMALE", "kos:gender:ALL").SetVal(4)

	kos, err := svc.Create(ctx, services.RequestContext{UserID: ownerID, Role: domain.RoleOwner}, services.CreateKosRequest{
		Name:          "Kos Anggrek",
		Address:       "Jl. Kenanga 12",
		PricePerMonth: 1_000_000,
		Gender:        "male",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, kos) {
		assert.Equal(t, ownerID, kos.OwnerID)
		assert.Equal(t, domain.GenderMale, kos.Gender)
	}

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestKosUpdate_NotOwner(t *testing.T) {
	kosRepo := mocks.NewKosRepository(t)
	redisClient, _ := redismock.NewClientMock()

	svc := services.NewKosService(kosRepo, redisClient, zap.NewNop())

	ctx := context.Background()
	kosID := uuid.New()

	kosRepo.On("GetByID", ctx, kosID).Return(&domain.Kos{ID: kosID, OwnerID: uuid.New()}, nil)

	name := "Renamed"
	_, err := svc.Update(ctx, services.RequestContext{UserID: uuid.New(), Role: domain.RoleOwner}, kosID.String(), services.UpdateKosRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestKosDelete_AdminOverride(t *testing.T) {
	kosRepo := mocks.NewKosRepository(t)
	redisClient, redisMock := redismock.NewClientMock()

	svc := services.NewKosService(kosRepo, redisClient, zap.NewNop())

	ctx := context.Background()
	kosID := uuid.New()

	kosRepo.On("GetByID", ctx, kosID).Return(&domain.Kos{ID: kosID, OwnerID: uuid.New()}, nil)
	kosRepo.On("Delete", ctx, kosID).Return(nil)
	redisMock.ExpectDel("kos:all", "kos:gender:MALE", "kos:gender:FEMALE", "kos:gender:ALL").SetVal(4)

	err := svc.Delete(ctx, services.RequestContext{UserID: uuid.New(), Role: domain.RoleAdmin}, kosID.String())

	assert.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
