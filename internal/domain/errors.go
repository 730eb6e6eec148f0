package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrAlreadyApplied     = errors.New("already applied to this job")
	ErrJobNotAccepting    = errors.New("job is not accepting applications")
	ErrCannotWithdraw     = errors.New("application can no longer be withdrawn")
)

// ValidationError carries a user-facing message for a 422 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidTransitionError reports a listing status change that the
// lifecycle does not allow, e.g. approving a closed listing.
type InvalidTransitionError struct {
	From   JobStatus
	To     JobStatus
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s listing in status %q", e.Action, e.From)
}
