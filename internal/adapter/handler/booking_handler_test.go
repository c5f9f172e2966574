package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/adapter/handler"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/ports/mocks"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
)

var testSecret = []byte("test-secret")

type apiFixture struct {
	bookingRepo *mocks.BookingRepository
	kosRepo     *mocks.KosRepository
	userRepo    *mocks.UserRepository
	reviewRepo  *mocks.ReviewRepository
	renderer    *mocks.ReceiptRenderer
	engine      *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		bookingRepo: mocks.NewBookingRepository(t),
		kosRepo:     mocks.NewKosRepository(t),
		userRepo:    mocks.NewUserRepository(t),
		reviewRepo:  mocks.NewReviewRepository(t),
		renderer:    mocks.NewReceiptRenderer(t),
	}

	redisClient, _ := redismock.NewClientMock()
	logger := zap.NewNop()

	bookingSvc := services.NewBookingService(f.bookingRepo, f.kosRepo, f.userRepo, f.renderer, t.TempDir(), logger)
	kosSvc := services.NewKosService(f.kosRepo, redisClient, logger)
	reviewSvc := services.NewReviewService(f.reviewRepo, f.kosRepo, logger)

	f.engine = gin.New()
	handler.SetupRoutes(
		f.engine,
		testSecret,
		handler.NewBookingHandler(bookingSvc),
		handler.NewKosHandler(kosSvc),
		handler.NewReviewHandler(reviewSvc),
	)
	return f
}

func signToken(t *testing.T, userID uuid.UUID, role domain.Role) string {
	claims := &handler.Claims{
		UserID: userID.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	assert.NoError(t, err)
	return token
}

func (f *apiFixture) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAPI_MissingToken(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodGet, "/books/user", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_BadToken(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodGet, "/books/user", "not-a-jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBookingEndpoint_Success(t *testing.T) {
	f := newAPIFixture(t)

	guestID := uuid.New()
	kosID := uuid.New()

	f.kosRepo.On("GetByID", mock.Anything, kosID).
		Return(&domain.Kos{ID: kosID, OwnerID: uuid.New(), Name: "Kos Melati", PricePerMonth: 1_500_000}, nil)
	f.userRepo.On("GetByID", mock.Anything, guestID).
		Return(&domain.User{ID: guestID, Name: "Budi", Role: domain.RoleSociety}, nil)
	f.bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	w := f.do(http.MethodPost, "/books", signToken(t, guestID, domain.RoleSociety), gin.H{
		"kos_id":     kosID.String(),
		"start_date": "2024-03-01",
		"end_date":   "2024-03-11",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Status)

	var resp services.CreateBookingResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 10, resp.Nights)
	assert.Equal(t, 15_000_000.0, resp.TotalPrice)
	assert.Equal(t, string(domain.BookingPending), string(resp.Booking.Status))
}

func TestCreateBookingEndpoint_OwnerForbidden(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodPost, "/books", signToken(t, uuid.New(), domain.RoleOwner), gin.H{
		"kos_id":     uuid.New().String(),
		"start_date": "2024-03-01",
		"end_date":   "2024-03-11",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingEndpoint_InvalidDateRange(t *testing.T) {
	f := newAPIFixture(t)

	guestID := uuid.New()
	kosID := uuid.New()

	f.kosRepo.On("GetByID", mock.Anything, kosID).
		Return(&domain.Kos{ID: kosID, PricePerMonth: 1_500_000}, nil)

	w := f.do(http.MethodPost, "/books", signToken(t, guestID, domain.RoleSociety), gin.H{
		"kos_id":     kosID.String(),
		"start_date": "2024-03-11",
		"end_date":   "2024-03-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Status)
}

func TestUpdateStatusEndpoint_NotOwner(t *testing.T) {
	f := newAPIFixture(t)

	booking := &domain.Booking{
		ID:     uuid.New(),
		Status: domain.BookingPending,
		Kos:    &domain.Kos{OwnerID: uuid.New()},
	}

	f.bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	// The caller holds the OWNER role but owns a different kos.
	w := f.do(http.MethodPut, "/books/"+booking.ID.String()+"/status",
		signToken(t, uuid.New(), domain.RoleOwner), gin.H{"status": "ACCEPT"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	f.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusEndpoint_TerminalConflict(t *testing.T) {
	f := newAPIFixture(t)

	ownerID := uuid.New()
	booking := &domain.Booking{
		ID:     uuid.New(),
		Status: domain.BookingAccept,
		Kos:    &domain.Kos{OwnerID: ownerID},
	}

	f.bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	w := f.do(http.MethodPut, "/books/"+booking.ID.String()+"/status",
		signToken(t, ownerID, domain.RoleOwner), gin.H{"status": "REJECT"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateStatusEndpoint_UnknownStatus(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodPut, "/books/"+uuid.New().String()+"/status",
		signToken(t, uuid.New(), domain.RoleOwner), gin.H{"status": "CANCELLED"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.bookingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPrintReceiptEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	guestID := uuid.New()
	booking := &domain.Booking{
		ID:     uuid.New(),
		UserID: guestID,
		Status: domain.BookingAccept,
		Kos:    &domain.Kos{Name: "Kos Melati", PricePerMonth: 1_500_000},
		User:   &domain.User{Name: "Budi"},
	}
	pdfBytes := []byte("%PDF-1.3 receipt")

	f.bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	f.renderer.On("Render", booking).Return(pdfBytes, nil)

	w := f.do(http.MethodGet, "/books/"+booking.ID.String()+"/print",
		signToken(t, guestID, domain.RoleSociety), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pdfBytes, w.Body.Bytes())
	assert.True(t, strings.Contains(w.Header().Get("Content-Disposition"), "receipt_"+booking.ID.String()))
}

func TestPrintReceiptEndpoint_NotFound(t *testing.T) {
	f := newAPIFixture(t)

	bookingID := uuid.New()
	f.bookingRepo.On("GetByID", mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := f.do(http.MethodGet, "/books/"+bookingID.String()+"/print",
		signToken(t, uuid.New(), domain.RoleSociety), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
