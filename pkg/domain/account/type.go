package account

import (
	"strings"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
)

// Type is the kind of account a customer holds.
type Type string

// Account types offered at the desk.
const (
	Savings Type = "Savings"
	Current Type = "Current"
)

// Types lists the account types in display order.
func Types() []Type {
	return []Type{Savings, Current}
}

// IsValid reports whether t is one of the known account types.
func (t Type) IsValid() bool {
	return t == Savings || t == Current
}

func (t Type) String() string {
	return string(t)
}

// ParseType reads an account type case-insensitively, e.g. "savings" or "CURRENT".
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError("account type", domain.ReasonRequired)
	}
	for _, t := range Types() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", domain.NewValidationError("account type", domain.ReasonInvalid)
}
