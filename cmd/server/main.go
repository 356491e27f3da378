package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/ledgerdesk/infra/initializer"
	"github.com/amirasaad/ledgerdesk/pkg/app"
	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/amirasaad/ledgerdesk/webapi"
	log "github.com/charmbracelet/log"
)

// @title Ledger Desk API
// @version 1.0.0
// @description In-memory banking desk: open accounts, deposit, withdraw, search and read transaction logs.
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	// Create and start the application
	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		if err := fiberApp.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	addr := cfg.Server.Addr()
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"metrics", cfg.Metrics.Enabled,
	)
	return fiberApp.Listen(addr)
}
