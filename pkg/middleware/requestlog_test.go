package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(buf *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	return app
}

func TestRequestLogger_IssuesID(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	resp, err := newApp(&buf).Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
	assert.Contains(t, buf.String(), "request handled")
	assert.Contains(t, buf.String(), "path=/ok")
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := newApp(&buf).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
	assert.Contains(t, buf.String(), "request_id=abc-123")
}

func TestRequestLogger_LogsFailures(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	app := newApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "request failed")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), "request rejected")
}
