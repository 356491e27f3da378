package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrDuplicateAccount is returned when an account number is already taken
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrNotFound is returned when no account has the requested number
	ErrNotFound = errors.New("account not found")
	// ErrInvalidAmount is returned when a transaction amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCurrencyMismatch is returned when an amount is not in the account currency.
	// It is also an ErrInvalidAmount.
	ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", ErrInvalidAmount)
)

// Reason describes why a field failed validation.
type Reason string

// Validation reasons
const (
	ReasonRequired    Reason = "is required"
	ReasonNotANumber  Reason = "is not a number"
	ReasonNotPositive Reason = "must be a positive whole number"
	ReasonTooPrecise  Reason = "has too many decimal places"
	ReasonInvalid     Reason = "is invalid"
)

// ValidationError reports one field that failed validation.
// errors.Is(err, ErrValidation) holds for every ValidationError; Err, when set,
// is matched as well.
type ValidationError struct {
	Field  string
	Reason Reason
	Err    error
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field string, reason Reason) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// WithErr returns a copy of e that also matches err.
func (e *ValidationError) WithErr(err error) *ValidationError {
	c := *e
	c.Err = err
	return &c
}

// Unwrap returns the underlying error, if any.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
