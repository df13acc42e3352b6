package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room type errors
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrDuplicateRoom    = errors.New("room type already exists")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrMaintenanceConflict = errors.New("maintenance conflict")
	ErrInvalidStayRange    = errors.New("invalid stay range")
	ErrInvalidTransition   = errors.New("invalid status transition")

	// Maintenance errors
	ErrMaintenanceNotFound = errors.New("maintenance window not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
