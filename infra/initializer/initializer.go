// Package initializer builds the application dependencies from configuration.
package initializer

import (
	"fmt"

	infra_eventbus "github.com/amirasaad/ledgerdesk/infra/eventbus"
	currencyfixtures "github.com/amirasaad/ledgerdesk/internal/fixtures/currency"
	"github.com/amirasaad/ledgerdesk/pkg/app"
	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/amirasaad/ledgerdesk/pkg/ledger"
	"github.com/amirasaad/ledgerdesk/pkg/metrics"
	promcollector "github.com/amirasaad/ledgerdesk/pkg/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	// Load currency metadata before resolving the ledger currency
	registered, err := currencyfixtures.RegisterActive(cfg.Ledger.CurrencyFile)
	if err != nil {
		logger.Warn("Failed to load currency metadata", "path", cfg.Ledger.CurrencyFile, "error", err)
	} else {
		logger.Debug("Loaded currency metadata", "registered_count", registered)
	}

	currency, err := cfg.Ledger.ResolveCurrency()
	if err != nil {
		return nil, err
	}
	deps.Ledger = ledger.New(ledger.WithCurrency(currency))
	logger.Info("Ledger ready", "currency", currency.Code, "symbol", currency.Symbol)

	deps.EventBus = infra_eventbus.NewWithMemory(logger)

	deps.Metrics = metrics.NoOpCollector{}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector, err := promcollector.NewPrometheusCollector(cfg.Metrics.Namespace, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize metrics collector: %w", err)
		}
		deps.Metrics = collector
		deps.Gatherer = reg
		logger.Info("Prometheus metrics enabled", "namespace", cfg.Metrics.Namespace)
	}

	return deps, nil
}
