package domain

import (
	"errors"
	"fmt"
)

// Sentinel error classes. Every command failure wraps exactly one of them.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCampaignExhausted = errors.New("campaign exhausted")
	ErrConflict          = errors.New("already exists")
)

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrTaskNotFound     = fmt.Errorf("task %w", ErrNotFound)
	ErrCampaignNotFound = fmt.Errorf("campaign %w", ErrNotFound)

	ErrTaskExists = fmt.Errorf("task %w", ErrConflict)

	// ErrLedgerMismatch is reported by reconciliation when a stored balance
	// differs from the sum of its transaction log.
	ErrLedgerMismatch = errors.New("balance does not match transaction log")
)

// ValidationError describes malformed command input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid is shorthand for constructing a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
