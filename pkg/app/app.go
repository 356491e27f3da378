package app

import (
	"log/slog"

	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/amirasaad/ledgerdesk/pkg/eventbus"
	"github.com/amirasaad/ledgerdesk/pkg/ledger"
	"github.com/amirasaad/ledgerdesk/pkg/metrics"
	"github.com/amirasaad/ledgerdesk/pkg/service/account"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains the infrastructure the desk services are built on.
type Deps struct {
	Ledger   *ledger.Ledger
	EventBus eventbus.Bus
	Metrics  metrics.Collector
	Gatherer prometheus.Gatherer // nil when metrics are disabled
	Logger   *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NoOpCollector{}
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.AccountService = account.New(deps.Ledger, deps.EventBus, deps.Logger)
	return app
}
