// Package account provides the desk operations over the ledger: opening accounts,
// depositing and withdrawing funds, searching, and reading transaction logs.
//
// The service is the boundary between raw user input and the ledger. It parses
// text fields (account numbers, amounts, account types) and reports parse failures
// as domain validation errors, so every presentation layer gets the same error
// taxonomy. Each operation is logged and emits a domain event on the bus.
package account

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	"github.com/amirasaad/ledgerdesk/pkg/domain/events"
	"github.com/amirasaad/ledgerdesk/pkg/eventbus"
	"github.com/amirasaad/ledgerdesk/pkg/ledger"
	"github.com/amirasaad/ledgerdesk/pkg/money"
)

// Operation names used in logs and rejection events.
const (
	OpCreate   = "create"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
)

// Service provides business logic for desk operations.
type Service struct {
	ledger *ledger.Ledger
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new Service over l. Events are emitted on bus.
func New(l *ledger.Ledger, bus eventbus.Bus, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ledger: l,
		bus:    bus,
		logger: logger.With("service", "account"),
		now:    time.Now,
	}
}

// CreateAccountInput carries the raw form fields for opening an account.
type CreateAccountInput struct {
	Number string
	Name   string
	Type   string
}

// Currency returns the currency amounts are read in.
func (s *Service) Currency() money.Currency {
	return s.ledger.Currency()
}

// CreateAccount opens an account from raw form input.
// Fields are checked in form order: number, name, type.
func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) (*account.Account, error) {
	logger := s.logger.With("operation", OpCreate, "number", in.Number)
	logger.Info("CreateAccount started")

	number, err := ParseNumber(in.Number)
	if err != nil {
		return nil, s.reject(ctx, logger, OpCreate, 0, err)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, s.reject(ctx, logger, OpCreate, number,
			domain.NewValidationError("name", domain.ReasonRequired))
	}
	typ, err := account.ParseType(in.Type)
	if err != nil {
		return nil, s.reject(ctx, logger, OpCreate, number, err)
	}

	acc, err := s.ledger.CreateAccount(number, in.Name, typ)
	if err != nil {
		return nil, s.reject(ctx, logger, OpCreate, number, err)
	}

	s.emit(ctx, logger, events.AccountOpened{
		Number:      acc.Number(),
		Name:        acc.Name(),
		AccountType: acc.Type().String(),
		Timestamp:   acc.CreatedAt(),
	})
	logger.Info("CreateAccount successful", "type", acc.Type())
	return acc, nil
}

// Deposit credits a raw amount to the account with a raw number.
// It returns the account and the new log entry.
func (s *Service) Deposit(ctx context.Context, number, amount string) (*account.Account, account.Entry, error) {
	logger := s.logger.With("operation", OpDeposit, "number", number, "amount", amount)
	logger.Info("Deposit started")

	acc, m, err := s.prepare(number, amount)
	if err != nil {
		return nil, account.Entry{}, s.reject(ctx, logger, OpDeposit, numberOf(acc), err)
	}
	entry, err := acc.Deposit(m)
	if err != nil {
		return nil, account.Entry{}, s.reject(ctx, logger, OpDeposit, acc.Number(), err)
	}

	s.emit(ctx, logger, events.FundsDeposited{
		Number:    acc.Number(),
		EntryID:   entry.ID,
		Amount:    entry.Amount,
		Balance:   entry.Balance,
		Timestamp: entry.Timestamp,
	})
	logger.Info("Deposit successful", "balance", entry.Balance.String())
	return acc, entry, nil
}

// Withdraw debits a raw amount from the account with a raw number.
// It returns the account and the new log entry.
func (s *Service) Withdraw(ctx context.Context, number, amount string) (*account.Account, account.Entry, error) {
	logger := s.logger.With("operation", OpWithdraw, "number", number, "amount", amount)
	logger.Info("Withdraw started")

	acc, m, err := s.prepare(number, amount)
	if err != nil {
		return nil, account.Entry{}, s.reject(ctx, logger, OpWithdraw, numberOf(acc), err)
	}
	entry, err := acc.Withdraw(m)
	if err != nil {
		return nil, account.Entry{}, s.reject(ctx, logger, OpWithdraw, acc.Number(), err)
	}

	s.emit(ctx, logger, events.FundsWithdrawn{
		Number:    acc.Number(),
		EntryID:   entry.ID,
		Amount:    entry.Amount,
		Balance:   entry.Balance,
		Timestamp: entry.Timestamp,
	})
	logger.Info("Withdraw successful", "balance", entry.Balance.String())
	return acc, entry, nil
}

// GetAccount looks up the account with a raw number.
func (s *Service) GetAccount(ctx context.Context, number string) (*account.Account, error) {
	n, err := ParseNumber(number)
	if err != nil {
		return nil, err
	}
	return s.ledger.FindAccount(n)
}

// Transactions returns the log of the account with a raw number, oldest first.
func (s *Service) Transactions(ctx context.Context, number string) ([]account.Entry, error) {
	acc, err := s.GetAccount(ctx, number)
	if err != nil {
		s.logger.Debug("Transactions lookup failed", "number", number, "error", err)
		return nil, err
	}
	return acc.Transactions(), nil
}

// Search returns table rows for accounts matching keyword. The keyword is not trimmed.
func (s *Service) Search(ctx context.Context, keyword string) []account.Row {
	rows := make([]account.Row, 0)
	for acc := range s.ledger.Search(keyword) {
		rows = append(rows, acc.Row())
	}
	return rows
}

// List returns table rows for every account.
func (s *Service) List(ctx context.Context) []account.Row {
	return s.Search(ctx, "")
}

// prepare resolves the account before reading the amount, so an unknown account
// is reported ahead of a malformed amount.
func (s *Service) prepare(number, amount string) (*account.Account, money.Money, error) {
	n, err := ParseNumber(number)
	if err != nil {
		return nil, money.Money{}, err
	}
	acc, err := s.ledger.FindAccount(n)
	if err != nil {
		return nil, money.Money{}, err
	}
	m, err := ParseAmount(amount, s.ledger.Currency())
	if err != nil {
		return acc, money.Money{}, err
	}
	return acc, m, nil
}

func (s *Service) reject(ctx context.Context, logger *slog.Logger, op string, number int64, err error) error {
	reason := events.ReasonFor(err)
	logger.Warn(op+" rejected", "reason", reason, "error", err)
	s.emit(ctx, logger, events.OperationRejected{
		Operation: op,
		Number:    number,
		Reason:    reason,
		Err:       err,
		Timestamp: s.now(),
	})
	return err
}

func (s *Service) emit(ctx context.Context, logger *slog.Logger, e eventbus.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, e); err != nil {
		logger.Error("failed to emit event", "type", e.Type(), "error", err)
	}
}

func numberOf(acc *account.Account) int64 {
	if acc == nil {
		return 0
	}
	return acc.Number()
}
