// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., paise for INR).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., paise for INR).
type Amount = int64

// Currency represents a monetary unit with its standard decimal places
type Currency struct {
	Code     Code   // 3-letter ISO 4217 code (e.g., "INR")
	Decimals int    // Number of decimal places (0-8)
	Symbol   string // Display symbol (e.g., "₹")
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 8 {
		return false
	}
	return c.Code.IsValid()
}

// String returns the currency code as a string
func (c Currency) String() string { return string(c.Code) }

// WithSymbol returns a copy of the currency using the given display symbol.
func (c Currency) WithSymbol(symbol string) Currency {
	c.Symbol = symbol
	return c
}

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   Amount
	currency Currency
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency Currency) Money {
	return Money{currency: currency}
}

// NewFromSmallestUnit creates a new Money object from the smallest currency unit.
// Invariants enforced:
//   - Currency must be valid (valid ISO 4217 code and valid decimal places).
func NewFromSmallestUnit(amount int64, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustFromSmallestUnit is like NewFromSmallestUnit but panics on an invalid currency.
func MustFromSmallestUnit(amount int64, currency Currency) Money {
	m, err := NewFromSmallestUnit(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.MustFromSmallestUnit(%d, %v): %v", amount, currency, err))
	}
	return m
}

// maxSmallestUnitDigits is the number of digits in math.MaxInt64.
const maxSmallestUnitDigits = 19

// plainDecimal matches the amounts Parse accepts: an optional sign and digits
// with an optional fraction. Exponents are not allowed.
var plainDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// NewFromDecimal converts a decimal amount in the main unit (e.g., rupees)
// into Money. The amount must be exactly representable in the smallest unit.
func NewFromDecimal(d decimal.Decimal, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, currency)
	}
	if d.IsZero() {
		return Money{currency: currency}, nil
	}
	// Bound the magnitude from the coefficient and exponent before scaling.
	intDigits := int64(d.NumDigits()) + int64(d.Exponent()) + int64(currency.Decimals)
	if intDigits > maxSmallestUnitDigits {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	if intDigits <= 0 {
		return Money{}, ErrTooPrecise
	}
	scaled := d.Shift(int32(currency.Decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return Money{}, ErrTooPrecise
	}
	if scaled.GreaterThan(decimal.NewFromInt(math.MaxInt64)) ||
		scaled.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: scaled.IntPart(), currency: currency}, nil
}

// Parse reads a decimal string such as "500", "500.5" or "500.50" in the main
// currency unit. Surrounding whitespace is ignored. No floating point is involved.
// Scientific notation such as "1e3" is rejected.
func Parse(text string, currency Currency) (Money, error) {
	trimmed := strings.TrimSpace(text)
	if !plainDecimal.MatchString(trimmed) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return NewFromDecimal(d, currency)
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Decimal returns the amount in the main currency unit as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -int32(m.currency.Decimals))
}

// Currency returns the currency of the Money object.
func (m Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency code of the Money object.
func (m Money) CurrencyCode() Code {
	return m.currency.Code
}

// IsSameCurrency checks if both values use the same currency code.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency.Code == other.currency.Code
}

// Add returns a new Money object with the sum of amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The sum must not overflow int64.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: cannot add %s and %s",
			ErrMismatchedCurrencies,
			m.currency.Code,
			other.currency.Code,
		)
	}
	if (other.amount > 0 && m.amount > math.MaxInt64-other.amount) ||
		(other.amount < 0 && m.amount < math.MinInt64-other.amount) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns a new Money object with the difference of amounts.
// The result can be negative if the subtrahend is larger than the minuend.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: cannot subtract %s from %s",
			ErrMismatchedCurrencies,
			other.currency.Code,
			m.currency.Code,
		)
	}
	if other.amount == math.MinInt64 {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return m.Add(Money{amount: -other.amount, currency: other.currency})
}

// Equals checks if both values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan checks if the current Money object is greater than another Money object.
// Returns an error if currencies do not match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrMismatchedCurrencies
	}
	return m.amount > other.amount, nil
}

// LessThan checks if the current Money object is less than another Money object.
// Returns an error if currencies do not match.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrMismatchedCurrencies
	}
	return m.amount < other.amount, nil
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns the amount with exactly the currency's decimal places and its code,
// e.g. "300.00 INR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Plain(), m.currency.Code)
}

// Plain returns the amount with exactly the currency's decimal places and no
// symbol or code, e.g. "300.00".
func (m Money) Plain() string {
	return m.Decimal().StringFixed(int32(m.currency.Decimals))
}

// Format renders the amount for display with the currency symbol, e.g. "₹300.00".
func (m Money) Format() string {
	if m.amount < 0 {
		return "-" + m.currency.Symbol + m.Decimal().Neg().StringFixed(int32(m.currency.Decimals))
	}
	return m.currency.Symbol + m.Plain()
}

// MarshalJSON implements json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"amount":   m.amount,
		"currency": m.currency.Code,
	})
}
