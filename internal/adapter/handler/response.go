package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

// respondOK writes the success envelope used across the API.
func respondOK(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, gin.H{
		"status":  true,
		"data":    data,
		"message": message,
	})
}

// respondError maps a service error onto an HTTP status. Domain errors keep
// their specific message; anything unexpected is surfaced generically.
func respondError(c *gin.Context, err error) {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	c.JSON(code, gin.H{
		"status":  false,
		"message": message,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrKosNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrIllegalTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
