package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the targeted listing id does not exist.
	ErrNotFound = errors.New("listing not found")
	// ErrValidation means the input violates a data-model invariant.
	// Mutations reject before any write.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden means the caller does not own the targeted listing.
	ErrForbidden = errors.New("not the listing owner")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
