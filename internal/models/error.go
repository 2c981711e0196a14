package models

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure kinds the API distinguishes. Controllers
// map these to HTTP statuses; services never touch HTTP.
var (
	// ErrRestaurantNotFound is returned when a restaurant id does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrPizzaNotFound is returned when a pizza id does not exist
	ErrPizzaNotFound = errors.New("pizza not found")

	// ErrDuplicateRestaurant is returned when a restaurant name is already taken
	ErrDuplicateRestaurant = errors.New("restaurant name already taken")
)

// ValidationError carries the list of field-rule violations for a rejected
// write. It is distinct from not-found and storage errors so callers can
// report it as a 400 with an errors array.
type ValidationError struct {
	Violations []string
}

// NewValidationError creates a ValidationError from a list of violations
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
