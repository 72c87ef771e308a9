package services

import (
	"errors"
	"fmt"
)

// Service errors, mapped to HTTP statuses by the controllers.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrSlotFull means the requested reservation slot already holds
	// the maximum number of non-canceled reservations for the day.
	ErrSlotFull = errors.New("slot is full")
)

// ValidationError covers missing or invalid request fields.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
