// Package webapi provides the HTTP surface of the desk.
// It is organized into sub-packages:
// - account: Account and transaction endpoints
// - common: Response envelopes, problem details and request binding
//
// API documentation is served at /swagger/.
package webapi

import (
	"errors"

	_ "github.com/amirasaad/ledgerdesk/cmd/server/swagger"
	"github.com/amirasaad/ledgerdesk/pkg/app"
	"github.com/amirasaad/ledgerdesk/pkg/middleware"
	accountweb "github.com/amirasaad/ledgerdesk/webapi/account"
	"github.com/amirasaad/ledgerdesk/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := fiber.Config{
		AppName: "ledgerdesk",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
		// The proxy header is only read when the peer is a trusted proxy,
		// otherwise c.IP() is the peer address.
		EnableTrustedProxyCheck: true,
		EnableIPValidation:      true,
	}
	if srv := a.Config.Server; srv != nil {
		cfg.ProxyHeader = srv.ProxyHeader
		cfg.TrustedProxies = srv.TrustedProxies
	}
	fiberApp := fiber.New(cfg)
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(middleware.RequestLogger(a.Deps.Logger))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger desk is running! 🚀")
	})

	if a.Deps.Gatherer != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(a.Deps.Gatherer, promhttp.HandlerOpts{}),
		))
	}

	timeLayout := ""
	if a.Config.Ledger != nil {
		timeLayout = a.Config.Ledger.TimeFormat
	}
	accountweb.Routes(fiberApp, a.AccountService, timeLayout)
	return fiberApp
}
