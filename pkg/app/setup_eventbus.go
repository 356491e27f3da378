// Package app wires the desk services to their infrastructure and registers
// the event handlers that react to ledger changes.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledgerdesk/pkg/domain/events"
	"github.com/amirasaad/ledgerdesk/pkg/eventbus"
	"github.com/amirasaad/ledgerdesk/pkg/metrics"
)

// Dependencies contains all the dependencies needed by the SetupBus function
type Dependencies struct {
	Bus     eventbus.Bus
	Metrics metrics.Collector
	Logger  *slog.Logger
}

// SetupBus registers all event handlers with the provided event Bus.
func SetupBus(deps Dependencies) {
	bus := deps.Bus
	audit := deps.Logger.With("component", "audit")

	bus.Register(events.EventTypeAccountOpened.String(), func(ctx context.Context, e eventbus.Event) error {
		if ev, ok := e.(events.AccountOpened); ok {
			audit.InfoContext(ctx, "account opened",
				"number", ev.Number, "name", ev.Name, "type", ev.AccountType)
		}
		return nil
	})
	bus.Register(events.EventTypeFundsDeposited.String(), func(ctx context.Context, e eventbus.Event) error {
		if ev, ok := e.(events.FundsDeposited); ok {
			audit.InfoContext(ctx, "funds deposited",
				"number", ev.Number, "entry_id", ev.EntryID,
				"amount", ev.Amount.String(), "balance", ev.Balance.String())
		}
		return nil
	})
	bus.Register(events.EventTypeFundsWithdrawn.String(), func(ctx context.Context, e eventbus.Event) error {
		if ev, ok := e.(events.FundsWithdrawn); ok {
			audit.InfoContext(ctx, "funds withdrawn",
				"number", ev.Number, "entry_id", ev.EntryID,
				"amount", ev.Amount.String(), "balance", ev.Balance.String())
		}
		return nil
	})
	bus.Register(events.EventTypeOperationRejected.String(), func(ctx context.Context, e eventbus.Event) error {
		if ev, ok := e.(events.OperationRejected); ok {
			audit.WarnContext(ctx, "operation rejected",
				"operation", ev.Operation, "number", ev.Number,
				"reason", ev.Reason, "error", ev.Err)
		}
		return nil
	})

	metrics.Subscribe(bus, deps.Metrics)
}

func (a *App) setupEventBus() {
	if a.Deps.EventBus == nil {
		return
	}
	SetupBus(Dependencies{
		Bus:     a.Deps.EventBus,
		Metrics: a.Deps.Metrics,
		Logger:  a.Deps.Logger,
	})
}
