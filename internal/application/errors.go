package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
