package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	resp, err := h.svc.CreateBooking(c.Request.Context(), requestContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, resp, "Booking created successfully")
}

func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	bookings, err := h.svc.GetUserBookings(c.Request.Context(), requestContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	bookings, err := h.svc.GetOwnerBookings(c.Request.Context(), requestContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, bookings, "Owner bookings retrieved successfully")
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACCEPT REJECT"`
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	booking, err := h.svc.UpdateStatus(c.Request.Context(), requestContext(c), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, booking, "Booking status updated successfully")
}

func (h *BookingHandler) GetTransactionHistory(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	bookings, err := h.svc.GetTransactionHistory(c.Request.Context(), requestContext(c), month, year)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, bookings, "Transaction history retrieved successfully")
}

// PrintReceipt streams the rendered receipt and removes the transient file
// after delivery. Deletion runs off the response path; failures are logged
// inside the service, never surfaced.
func (h *BookingHandler) PrintReceipt(c *gin.Context) {
	artifact, err := h.svc.PrintReceipt(c.Request.Context(), requestContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.FileAttachment(artifact.Path, artifact.Filename)

	go h.svc.DiscardReceipt(artifact)
}
