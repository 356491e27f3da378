package account

import (
	"errors"
	"strconv"
	"strings"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/money"
)

// ParseNumber reads an account number typed by a user.
func ParseNumber(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, domain.NewValidationError("account number", domain.ReasonRequired)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("account number", domain.ReasonNotANumber)
	}
	if n <= 0 {
		return 0, domain.NewValidationError("account number", domain.ReasonNotPositive)
	}
	return n, nil
}

// ParseAmount reads an amount typed by a user in the main currency unit.
// Zero and negative amounts parse; the account rejects them.
func ParseAmount(text string, currency money.Currency) (money.Money, error) {
	if strings.TrimSpace(text) == "" {
		return money.Money{}, domain.NewValidationError("amount", domain.ReasonRequired)
	}
	m, err := money.Parse(text, currency)
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, money.ErrTooPrecise):
		return money.Money{}, domain.NewValidationError("amount", domain.ReasonTooPrecise)
	case errors.Is(err, money.ErrAmountExceedsMaxSafeInt):
		return money.Money{}, domain.NewValidationError("amount", domain.ReasonInvalid).
			WithErr(domain.ErrInvalidAmount)
	default:
		return money.Money{}, domain.NewValidationError("amount", domain.ReasonNotANumber)
	}
}
