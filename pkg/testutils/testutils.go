// Package testutils provides helpers shared by the HTTP and desk tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	infra_eventbus "github.com/amirasaad/ledgerdesk/infra/eventbus"
	"github.com/amirasaad/ledgerdesk/pkg/app"
	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/amirasaad/ledgerdesk/pkg/ledger"
	"github.com/gofiber/fiber/v2"
)

// FixedTime is the instant returned by FixedClock.
var FixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime.
func FixedClock() time.Time { return FixedTime }

// QuietLogger returns a logger that drops everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestConfig returns a configuration with the defaults the desk ships with.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{Format: "text", Output: "discard"},
		Ledger:    &config.Ledger{Currency: "INR", TimeFormat: "2006-01-02 15:04:05"},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Metrics:   &config.Metrics{Namespace: "ledgerdesk_test"},
	}
}

// NewTestApp builds an App over an empty ledger with a fixed clock and an in-memory bus.
func NewTestApp(cfg *config.App) *app.App {
	if cfg == nil {
		cfg = TestConfig()
	}
	logger := QuietLogger()
	return app.New(&app.Deps{
		Ledger:   ledger.New(ledger.WithClock(FixedClock)),
		EventBus: infra_eventbus.NewWithMemory(logger),
		Logger:   logger,
	}, cfg)
}

// MakeRequestWithApp is a helper for making HTTP requests against a fiber app.
func MakeRequestWithApp(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// DecodeJSON decodes the response body into v and closes it.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close() //nolint:errcheck
	return json.NewDecoder(resp.Body).Decode(v)
}
