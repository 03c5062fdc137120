package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrInvalidRange       = errors.New("end date is before start date")
)

// Persistence wraps a store error so handlers can log the cause while
// keeping the user-facing message generic.
func Persistence(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
