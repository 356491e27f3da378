// Package metrics records ledger activity.
package metrics

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledgerdesk/pkg/domain/events"
	"github.com/amirasaad/ledgerdesk/pkg/eventbus"
	"github.com/amirasaad/ledgerdesk/pkg/money"
)

// Collector defines the interface for collecting ledger metrics.
// Implementations can export metrics to various backends (Prometheus, etc.).
type Collector interface {
	RecordAccountOpened(accountType string)
	RecordDeposit(amount money.Money)
	RecordWithdrawal(amount money.Money)
	RecordRejected(operation string, reason string)
}

// NoOpCollector is a no-op implementation of Collector.
// It's used as the default collector when metrics are not needed.
type NoOpCollector struct{}

// RecordAccountOpened does nothing.
func (NoOpCollector) RecordAccountOpened(string) {}

// RecordDeposit does nothing.
func (NoOpCollector) RecordDeposit(money.Money) {}

// RecordWithdrawal does nothing.
func (NoOpCollector) RecordWithdrawal(money.Money) {}

// RecordRejected does nothing.
func (NoOpCollector) RecordRejected(string, string) {}

// Subscribe feeds ledger events from bus into c.
func Subscribe(bus eventbus.Bus, c Collector) {
	bus.Register(events.EventTypeAccountOpened.String(), func(_ context.Context, e eventbus.Event) error {
		ev, ok := e.(events.AccountOpened)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		c.RecordAccountOpened(ev.AccountType)
		return nil
	})
	bus.Register(events.EventTypeFundsDeposited.String(), func(_ context.Context, e eventbus.Event) error {
		ev, ok := e.(events.FundsDeposited)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		c.RecordDeposit(ev.Amount)
		return nil
	})
	bus.Register(events.EventTypeFundsWithdrawn.String(), func(_ context.Context, e eventbus.Event) error {
		ev, ok := e.(events.FundsWithdrawn)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		c.RecordWithdrawal(ev.Amount)
		return nil
	})
	bus.Register(events.EventTypeOperationRejected.String(), func(_ context.Context, e eventbus.Event) error {
		ev, ok := e.(events.OperationRejected)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		c.RecordRejected(ev.Operation, string(ev.Reason))
		return nil
	})
}
