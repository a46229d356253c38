package apperrors

import (
	"errors"
	"fmt"
)

// 錯誤分類：handler 依此決定 HTTP 狀態碼
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	ErrShowtimeNotFound   = fmt.Errorf("showtime %w", ErrNotFound)
	ErrSeatLayoutNotFound = fmt.Errorf("seat layout %w", ErrNotFound)
	ErrSeatNotFound       = fmt.Errorf("seat %w", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("booking %w", ErrNotFound)
	ErrVoucherNotFound    = fmt.Errorf("voucher %w", ErrNotFound)

	ErrShowtimeNotBookable  = fmt.Errorf("showtime is not open for booking: %w", ErrInvalidState)
	ErrInvalidBookingStatus = fmt.Errorf("booking status does not allow this operation: %w", ErrInvalidState)
	ErrPaymentNotCompleted  = fmt.Errorf("payment not completed: %w", ErrInvalidState)

	ErrSeatsNotHeld     = fmt.Errorf("some seats not held: %w", ErrConflict)
	ErrHoldExpired      = fmt.Errorf("hold expired or invalid: %w", ErrConflict)
	ErrBookingRaceLost  = fmt.Errorf("seats were taken before the booking was confirmed: %w", ErrConflict)
	ErrAlreadyCheckedIn = fmt.Errorf("booking already checked in: %w", ErrConflict)
	ErrShowtimeOverlap  = fmt.Errorf("showtime overlaps another active showtime: %w", ErrConflict)

	ErrInvalidInput     = fmt.Errorf("invalid input: %w", ErrValidation)
	ErrTooManySeats     = fmt.Errorf("too many seats requested: %w", ErrValidation)
	ErrInvalidSignature = fmt.Errorf("invalid webhook signature: %w", ErrValidation)
	ErrAmountMismatch   = fmt.Errorf("paid amount does not match booking total: %w", ErrValidation)

	ErrRateLimited = errors.New("too many requests")
)
