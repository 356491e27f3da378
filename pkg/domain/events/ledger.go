// Package events defines the events emitted when the ledger changes or refuses a change.
package events

import (
	"errors"
	"time"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/money"
	"github.com/google/uuid"
)

// AccountOpened is emitted after an account is created.
type AccountOpened struct {
	Number      int64
	Name        string
	AccountType string
	Timestamp   time.Time
}

// FundsDeposited is emitted after a successful deposit.
type FundsDeposited struct {
	Number    int64
	EntryID   uuid.UUID
	Amount    money.Money
	Balance   money.Money
	Timestamp time.Time
}

// FundsWithdrawn is emitted after a successful withdrawal.
type FundsWithdrawn struct {
	Number    int64
	EntryID   uuid.UUID
	Amount    money.Money
	Balance   money.Money
	Timestamp time.Time
}

// OperationRejected is emitted when an operation fails one of its preconditions.
type OperationRejected struct {
	Operation string
	Number    int64 // zero when the number itself could not be read
	Reason    Reason
	Err       error
	Timestamp time.Time
}

func (e AccountOpened) Type() string     { return EventTypeAccountOpened.String() }
func (e FundsDeposited) Type() string    { return EventTypeFundsDeposited.String() }
func (e FundsWithdrawn) Type() string    { return EventTypeFundsWithdrawn.String() }
func (e OperationRejected) Type() string { return EventTypeOperationRejected.String() }

// Reason is a low-cardinality label for a rejected operation.
type Reason string

// Rejection reasons
const (
	ReasonValidation        Reason = "validation"
	ReasonDuplicateAccount  Reason = "duplicate_account"
	ReasonNotFound          Reason = "not_found"
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonInternal          Reason = "internal"
)

// ReasonFor classifies err into one of the rejection reasons.
func ReasonFor(err error) Reason {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ReasonValidation
	case errors.Is(err, domain.ErrDuplicateAccount):
		return ReasonDuplicateAccount
	case errors.Is(err, domain.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return ReasonInvalidAmount
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	default:
		return ReasonInternal
	}
}
