package money

import (
	"fmt"
	"strings"
	"sync"
)

// Code represents a currency code (e.g., "INR", "USD").
type Code string

// Common currency codes
const (
	INR Code = "INR" // Indian Rupee
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
	JPY Code = "JPY" // Japanese Yen
)

// Common currency instances
var (
	INRCurrency = Currency{Code: INR, Decimals: 2, Symbol: "₹"}
	USDCurrency = Currency{Code: USD, Decimals: 2, Symbol: "$"}
	EURCurrency = Currency{Code: EUR, Decimals: 2, Symbol: "€"}
	GBPCurrency = Currency{Code: GBP, Decimals: 2, Symbol: "£"}
	JPYCurrency = Currency{Code: JPY, Decimals: 0, Symbol: "¥"} // Japanese Yen has no decimal places
)

// DefaultCurrency is the currency the desk books in unless configured otherwise.
var DefaultCurrency = INRCurrency

var (
	knownMu sync.RWMutex
	known   = map[Code]Currency{
		INR: INRCurrency,
		USD: USDCurrency,
		EUR: EURCurrency,
		GBP: GBPCurrency,
		JPY: JPYCurrency,
	}
)

// Register adds c to the currencies Lookup knows, replacing any entry with the same code.
func Register(c Currency) error {
	if !c.IsValid() {
		return ErrInvalidCurrency
	}
	knownMu.Lock()
	defer knownMu.Unlock()
	known[c.Code] = c
	return nil
}

// IsValid checks if the currency code is three uppercase letters.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// ToCurrency returns the registered Currency for c.
func (c Code) ToCurrency() (Currency, bool) {
	knownMu.RLock()
	defer knownMu.RUnlock()
	cur, ok := known[c]
	return cur, ok
}

// Lookup resolves a registered currency code string such as "inr" or "USD".
func Lookup(code string) (Currency, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return Currency{}, ErrInvalidCurrency
	}
	cur, ok := c.ToCurrency()
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, c)
	}
	return cur, nil
}
