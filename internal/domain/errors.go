package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrRoomUnavailable = errors.New("room not available")
	ErrDatesConflict   = errors.New("room already booked for selected dates")
	ErrRoomHasBookings = errors.New("room has live bookings")
	ErrEmailTaken      = errors.New("email already exists")
)

var (
	ErrUploadFailed     = errors.New("image upload failed")
	ErrStoreUnavailable = errors.New("store temporarily unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
