package domain

import "errors"

var (
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrKosNotFound       = errors.New("kos not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrReviewNotFound    = errors.New("review not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrIllegalTransition = errors.New("illegal booking status transition")
	ErrRenderFailure     = errors.New("failed to render receipt")
)
