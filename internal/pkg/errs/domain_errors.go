package errs

import "errors"

// Domain-specific sentinel errors surfaced by the usecase layers
var (
	// Booking errors
	ErrInvalidRange         = errors.New("invalid time range")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceInactive     = errors.New("resource is inactive")
	ErrCourtConflict        = errors.New("court already booked for selected time")
	ErrCoachUnavailable     = errors.New("coach not available for selected time")
	ErrCoachConflict        = errors.New("coach already booked for selected time")
	ErrEquipmentUnavailable = errors.New("equipment not available")
	ErrEquipmentExhausted   = errors.New("not enough equipment available")

	// Booking lifecycle errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrNotBookingOwner  = errors.New("not authorized for this booking")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
