package types

import "errors"

// Error taxonomy shared by the services. Handlers map these to HTTP
// statuses; everything else wraps them with context via %w.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrForbidden          = errors.New("operation not permitted")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Timesheet state machine.
	ErrAlreadyLoggedIn = errors.New("already logged in today")
	ErrNotLoggedIn     = errors.New("not logged in")

	ErrInvalidCredentials = errors.New("invalid username or password")
)
