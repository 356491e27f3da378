// Package handler exposes the desk's HTTP API as a single net/http handler for
// serverless platforms.
package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/amirasaad/ledgerdesk/infra/initializer"
	"github.com/amirasaad/ledgerdesk/pkg/app"
	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/amirasaad/ledgerdesk/webapi"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once    sync.Once
	handle  http.HandlerFunc
	initErr error
)

// Handler is the main entry point of the application.
// The ledger lives as long as the process, so the app is built once and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() {
		handle, initErr = build()
	})
	if initErr != nil {
		slog.Error("Failed to build application", "error", initErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	handle.ServeHTTP(w, r)
}

// building the fiber application
func build() (http.HandlerFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, err
	}
	return adaptor.FiberApp(webapi.SetupApp(app.New(deps, cfg))), nil
}
