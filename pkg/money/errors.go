package money

import (
	"errors"
	"fmt"
)

// Common money package errors
var (
	// ErrInvalidAmount is returned when text cannot be read as a decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTooPrecise is returned when an amount has more decimal places than the currency allows.
	ErrTooPrecise = errors.New("amount has more decimal places than allowed by the currency")

	// ErrAmountExceedsMaxSafeInt is returned when an amount does not fit in the smallest unit range.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")

	// ErrInvalidCurrency is returned for malformed currency codes.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrUnknownCurrency is returned by Lookup for a well-formed code that was never registered.
	ErrUnknownCurrency = fmt.Errorf("%w: not registered", ErrInvalidCurrency)

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies
	ErrMismatchedCurrencies = errors.New("mismatched currencies")
)
