package domain

import (
	"fmt"
	"strings"
)

// ValidateRestaurant checks that a record carries the one required field.
// Everything besides the id is optional by contract.
func ValidateRestaurant(r Restaurant) error {
	if strings.TrimSpace(r.ID.String()) == "" {
		return NewValidationError("id", r.Name, ErrMissingID)
	}
	return nil
}

// ValidateBatch validates every record in a batch, reporting the first
// failure with its position.
func ValidateBatch(records []Restaurant) error {
	for i, r := range records {
		if err := ValidateRestaurant(r); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// ValidateMessage checks that a chat message is present. Called before any
// provider round trip so an empty message never costs a network call.
func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	return nil
}
