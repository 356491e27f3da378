package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledgerdesk/pkg/money"
	"github.com/google/uuid"
)

// DefaultTimeLayout is the timestamp layout used in log lines.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// Kind identifies what an Entry records.
type Kind string

// Entry kinds
const (
	KindOpened     Kind = "opened"
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Entry is one immutable, timestamped record in an account's transaction log.
type Entry struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      money.Money
	Balance     money.Money // Account balance snapshot after the operation
	Timestamp   time.Time
	Description string
}

// Line renders the entry as "[timestamp] description".
func (e Entry) Line() string {
	return e.Format(DefaultTimeLayout)
}

// Format renders the entry like Line using a custom timestamp layout.
func (e Entry) Format(layout string) string {
	return fmt.Sprintf("[%s] %s", e.Timestamp.Format(layout), e.Description)
}

func newEntry(kind Kind, amount, balance money.Money, at time.Time) Entry {
	var desc string
	switch kind {
	case KindOpened:
		desc = "Account opened with balance " + balance.Format()
	case KindDeposit:
		desc = fmt.Sprintf("Deposited %s | New Balance %s", amount.Format(), balance.Format())
	case KindWithdrawal:
		desc = fmt.Sprintf("Withdrew %s | New Balance %s", amount.Format(), balance.Format())
	}
	return Entry{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		Balance:     balance,
		Timestamp:   at,
		Description: desc,
	}
}
