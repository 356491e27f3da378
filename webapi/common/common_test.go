package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{domain.NewValidationError("name", domain.ReasonRequired), fiber.StatusBadRequest},
		{domain.ErrInvalidAmount, fiber.StatusBadRequest},
		{domain.ErrCurrencyMismatch, fiber.StatusBadRequest},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{fmt.Errorf("lookup: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{domain.ErrDuplicateAccount, fiber.StatusConflict},
		{domain.ErrInsufficientFunds, fiber.StatusUnprocessableEntity},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), tt.err.Error())
	}
}

type createRequest struct {
	Name string `json:"name" validate:"required"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/bind", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[createRequest](c)
		if in == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "ok", in)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Failed", domain.NewValidationError("amount", domain.ReasonNotANumber))
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, ProblemDetails) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var pd ProblemDetails
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	}
	return resp, pd
}

func TestBindAndValidate(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, _ := do(t, app, fiber.MethodPost, "/bind", `{"name":"Priya"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, pd := do(t, app, fiber.MethodPost, "/bind", `{"name":""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", pd.Title)
	assert.NotNil(t, pd.Errors)

	resp, pd = do(t, app, fiber.MethodPost, "/bind", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", pd.Title)
}

func TestProblemDetailsJSON(t *testing.T) {
	t.Parallel()
	resp, pd := do(t, newTestApp(), fiber.MethodGet, "/fail", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, fiber.StatusBadRequest, pd.Status)
	assert.Equal(t, "amount is not a number", pd.Detail)
	assert.Equal(t, "/fail", pd.Instance)
}
