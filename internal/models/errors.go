package models

import (
	"errors"
	"fmt"
)

// ValidationError describes input that cannot be processed. It is fatal to
// the operation that received the input but never to a whole batch.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Custom errors
var (
	ErrNoEvents = NewValidationError("empty_play_by_play", "expected play-by-play events, received none")
	ErrNotFound = errors.New("record not found")
)
