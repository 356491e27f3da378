package account

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/money"
)

// Account represents one customer's account, encapsulating its balance and audit trail.
// It acts as an aggregate root, ensuring all state changes are consistent and valid.
//
// Invariants:
//   - Number, Name and Type never change after Build.
//   - The balance can never be negative.
//   - Every balance change appends exactly one Entry; entries are never removed.
//   - All operations are safe for concurrent use, enforced by a mutex.
type Account struct {
	mu        sync.RWMutex
	number    int64
	name      string
	typ       Type
	currency  money.Currency
	balance   money.Money
	entries   []Entry
	createdAt time.Time
	now       func() time.Time
}

// Row is the table view of an account.
type Row struct {
	Number  int64
	Name    string
	Type    Type
	Balance money.Money
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	number   int64
	name     string
	typ      Type
	currency money.Currency
	now      func() time.Time
}

// New creates a new Builder with the default currency and the wall clock.
func New() *Builder {
	return &Builder{
		currency: money.DefaultCurrency,
		now:      time.Now,
	}
}

// WithNumber sets the account number. This is a mandatory field.
func (b *Builder) WithNumber(number int64) *Builder {
	b.number = number
	return b
}

// WithName sets the customer name. Surrounding whitespace is dropped.
func (b *Builder) WithName(name string) *Builder {
	b.name = strings.TrimSpace(name)
	return b
}

// WithType sets the account type.
func (b *Builder) WithType(t Type) *Builder {
	b.typ = t
	return b
}

// WithCurrency sets the currency the account books in.
func (b *Builder) WithCurrency(c money.Currency) *Builder {
	b.currency = c
	return b
}

// WithClock overrides the time source used for log timestamps.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build validates the fields and returns an account with a zero balance and
// a single "opened" entry.
func (b *Builder) Build() (*Account, error) {
	if b.number <= 0 {
		return nil, domain.NewValidationError("account number", domain.ReasonNotPositive)
	}
	if b.name == "" {
		return nil, domain.NewValidationError("name", domain.ReasonRequired)
	}
	if !b.typ.IsValid() {
		return nil, domain.NewValidationError("account type", domain.ReasonInvalid)
	}
	balance, err := money.NewFromSmallestUnit(0, b.currency)
	if err != nil {
		return nil, err
	}
	created := b.now()
	return &Account{
		number:    b.number,
		name:      b.name,
		typ:       b.typ,
		currency:  b.currency,
		balance:   balance,
		entries:   []Entry{newEntry(KindOpened, balance, balance, created)},
		createdAt: created,
		now:       b.now,
	}, nil
}

// Number returns the account number.
func (a *Account) Number() int64 { return a.number }

// Name returns the customer name.
func (a *Account) Name() string { return a.name }

// Type returns the account type.
func (a *Account) Type() Type { return a.typ }

// CreatedAt returns when the account was opened.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Currency returns the currency the account books in.
func (a *Account) Currency() money.Currency { return a.currency }

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

// Row returns a consistent table view of the account.
func (a *Account) Row() Row {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Row{Number: a.number, Name: a.name, Type: a.typ, Balance: a.balance}
}

// Transactions returns a copy of the transaction log in insertion order.
func (a *Account) Transactions() []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Deposit adds amount to the balance and records it.
// Invariants enforced:
//   - Amount must be positive.
//   - Amount must be in the account currency.
//   - The new balance must fit in the smallest currency unit range.
func (a *Account) Deposit(amount money.Money) (Entry, error) {
	if err := a.validateAmount(amount); err != nil {
		return Entry{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", domain.ErrInvalidAmount, err)
	}
	return a.apply(KindDeposit, amount, newBalance), nil
}

// Withdraw removes amount from the balance and records it.
// Invariants enforced:
//   - Amount must be positive.
//   - Amount must be in the account currency.
//   - Cannot withdraw more than the current balance.
func (a *Account) Withdraw(amount money.Money) (Entry, error) {
	if err := a.validateAmount(amount); err != nil {
		return Entry{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.Amount() > a.balance.Amount() {
		return Entry{}, domain.ErrInsufficientFunds
	}
	newBalance, err := a.balance.Subtract(amount)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", domain.ErrInvalidAmount, err)
	}
	return a.apply(KindWithdrawal, amount, newBalance), nil
}

func (a *Account) validateAmount(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.CurrencyCode() != a.currency.Code {
		return domain.ErrCurrencyMismatch
	}
	return nil
}

// apply must be called with a.mu held.
func (a *Account) apply(kind Kind, amount, newBalance money.Money) Entry {
	e := newEntry(kind, amount, newBalance, a.now())
	a.balance = newBalance
	a.entries = append(a.entries, e)
	return e
}
