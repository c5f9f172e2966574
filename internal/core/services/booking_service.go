package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/ports"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/pricing"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	KosID     string `json:"kos_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CreateBookingResponse struct {
	Booking    *domain.Booking `json:"booking"`
	Nights     int             `json:"nights"`
	TotalPrice float64         `json:"total_price"`
}

// ReceiptArtifact is a handle to a rendered receipt file. The artifact is
// transient: the caller deletes it after delivery.
type ReceiptArtifact struct {
	Filename string
	Path     string
}

type BookingService struct {
	bookingRepo ports.BookingRepository
	kosRepo     ports.KosRepository
	userRepo    ports.UserRepository
	renderer    ports.ReceiptRenderer
	receiptsDir string
	logger      *zap.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepository,
	kosRepo ports.KosRepository,
	userRepo ports.UserRepository,
	renderer ports.ReceiptRenderer,
	receiptsDir string,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		kosRepo:     kosRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		receiptsDir: receiptsDir,
		logger:      logger,
	}
}

// CreateBooking validates the request against the kos, prices the stay with
// the flat-nights strategy and persists a PENDING booking for the caller.
func (s *BookingService) CreateBooking(ctx context.Context, rctx RequestContext, req CreateBookingRequest) (*CreateBookingResponse, error) {
	kosID, err := uuid.Parse(req.KosID)
	if err != nil {
		return nil, domain.ErrKosNotFound
	}

	checkIn, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}

	checkOut, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}

	kos, err := s.kosRepo.GetByID(ctx, kosID)
	if err != nil {
		return nil, err
	}

	nights, err := pricing.Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	totalPrice, err := pricing.FlatNights(kos.PricePerMonth, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	guest, err := s.userRepo.GetByID(ctx, rctx.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:        uuid.New(),
		KosID:     kosID,
		UserID:    rctx.UserID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    domain.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.logger.Error("failed to persist booking",
			zap.String("booking_id", booking.ID.String()),
			zap.String("kos_id", kosID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking.Kos = kos
	booking.User = guest

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("kos_id", kosID.String()),
		zap.String("user_id", rctx.UserID.String()),
		zap.Int("nights", nights),
		zap.Float64("total_price", totalPrice))

	return &CreateBookingResponse{
		Booking:    booking,
		Nights:     nights,
		TotalPrice: totalPrice,
	}, nil
}

// GetUserBookings returns the caller's bookings joined with kos data.
func (s *BookingService) GetUserBookings(ctx context.Context, rctx RequestContext) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, rctx.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}
	return bookings, nil
}

// GetOwnerBookings returns bookings made against any kos the caller owns.
func (s *BookingService) GetOwnerBookings(ctx context.Context, rctx RequestContext) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.GetByOwnerID(ctx, rctx.UserID)
	if err != nil {
		return nil, fmt.Errorf("get owner bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking out of PENDING. Authority and legality checks
// live on the domain object; the conditional repository update keeps a lost
// race from overwriting a terminal status.
func (s *BookingService) UpdateStatus(ctx context.Context, rctx RequestContext, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := booking.Transition(rctx.UserID, next); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next); err != nil {
		return nil, err
	}

	booking.Status = next
	booking.UpdatedAt = time.Now()

	s.logger.Info("booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("status", string(next)))

	return booking, nil
}

// GetTransactionHistory returns the owner's bookings newest-first, optionally
// restricted to the calendar month given by month (1-12) and year. The whole
// last day of the month is included.
func (s *BookingService) GetTransactionHistory(ctx context.Context, rctx RequestContext, month, year int) ([]domain.Booking, error) {
	var from, to *time.Time
	if month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		from, to = &start, &end
	}

	bookings, err := s.bookingRepo.GetHistoryByOwner(ctx, rctx.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get transaction history: %w", err)
	}
	return bookings, nil
}

// PrintReceipt renders the booking receipt (pro-rated pricing) and writes it
// to a uniquely named transient file. The artifact is written via a temp file
// and rename so a failure never leaves a partial receipt behind.
func (s *BookingService) PrintReceipt(ctx context.Context, rctx RequestContext, bookingID string) (*ReceiptArtifact, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(booking)
	if err != nil {
		s.logger.Error("failed to render receipt",
			zap.String("booking_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}

	filename := fmt.Sprintf("receipt_%s_%d.pdf", booking.ID, time.Now().UnixMilli())
	path := filepath.Join(s.receiptsDir, filename)

	if err := writeArtifact(path, data); err != nil {
		s.logger.Error("failed to write receipt artifact",
			zap.String("booking_id", id.String()),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}

	s.logger.Info("receipt rendered",
		zap.String("booking_id", id.String()),
		zap.String("file", filename))

	return &ReceiptArtifact{Filename: filename, Path: path}, nil
}

// DiscardReceipt removes a delivered receipt artifact. Failures are logged
// only; the receipt has already reached the caller.
func (s *BookingService) DiscardReceipt(artifact *ReceiptArtifact) {
	if err := os.Remove(artifact.Path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to delete receipt artifact",
			zap.String("path", artifact.Path),
			zap.Error(err))
	}
}

func writeArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".receipt-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
