// Package ledger holds the collection of accounts keyed by account number.
//
// The ledger enforces identity rules (numbers are unique, lookups of unknown
// numbers fail) and offers search over the collection. Balance rules live on
// the account itself. A Ledger is safe for concurrent use.
package ledger

import (
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	"github.com/amirasaad/ledgerdesk/pkg/money"
)

// Ledger maps account numbers to accounts and remembers the order they were opened in.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int64]*account.Account
	order    []*account.Account
	currency money.Currency
	now      func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithCurrency sets the currency new accounts book in.
func WithCurrency(c money.Currency) Option {
	return func(l *Ledger) { l.currency = c }
}

// WithClock overrides the time source used for account logs.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[int64]*account.Account),
		currency: money.DefaultCurrency,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Currency returns the currency accounts in this ledger book in.
func (l *Ledger) Currency() money.Currency {
	return l.currency
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// CreateAccount opens a new account with a zero balance.
// It fails with a validation error for a blank name, a non-positive number or
// an unknown type, and with domain.ErrDuplicateAccount when the number is taken.
func (l *Ledger) CreateAccount(number int64, name string, typ account.Type) (*account.Account, error) {
	acc, err := account.New().
		WithNumber(number).
		WithName(name).
		WithType(typ).
		WithCurrency(l.currency).
		WithClock(l.now).
		Build()
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.accounts[number]; exists {
		return nil, domain.ErrDuplicateAccount
	}
	l.accounts[number] = acc
	l.order = append(l.order, acc)
	return acc, nil
}

// FindAccount returns the account with the given number or domain.ErrNotFound.
// The returned account is shared; its methods are safe for concurrent use.
func (l *Ledger) FindAccount(number int64) (*account.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return acc, nil
}

// Deposit credits amount to the account with the given number.
func (l *Ledger) Deposit(number int64, amount money.Money) (account.Entry, error) {
	acc, err := l.FindAccount(number)
	if err != nil {
		return account.Entry{}, err
	}
	return acc.Deposit(amount)
}

// Withdraw debits amount from the account with the given number.
func (l *Ledger) Withdraw(number int64, amount money.Money) (account.Entry, error) {
	acc, err := l.FindAccount(number)
	if err != nil {
		return account.Entry{}, err
	}
	return acc.Withdraw(amount)
}

// Search yields, in the order they were opened, the accounts whose number
// contains keyword or whose name contains keyword ignoring case. An empty
// keyword yields every account. The keyword is matched as given, spaces included.
func (l *Ledger) Search(keyword string) iter.Seq[*account.Account] {
	return func(yield func(*account.Account) bool) {
		l.mu.RLock()
		snapshot := slices.Clone(l.order)
		l.mu.RUnlock()

		for _, acc := range snapshot {
			if !Matches(acc, keyword) {
				continue
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// List returns every account in the order they were opened.
func (l *Ledger) List() []*account.Account {
	return slices.Collect(l.Search(""))
}

// Matches reports whether acc is selected by keyword.
func Matches(acc *account.Account, keyword string) bool {
	if keyword == "" {
		return true
	}
	if strings.Contains(strconv.FormatInt(acc.Number(), 10), keyword) {
		return true
	}
	return strings.Contains(strings.ToLower(acc.Name()), strings.ToLower(keyword))
}
