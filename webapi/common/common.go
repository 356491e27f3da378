// Package common holds the response envelopes and helpers shared by the HTTP handlers.
package common

import (
	"errors"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// FieldError is one entry of ProblemDetails.Errors for validation failures.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

var validate = validator.New()

// SuccessResponseJSON writes a Response envelope with the given status.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes err as RFC 9457 Problem Details.
// The status is derived from err unless an int is passed in opts. A string in
// opts replaces the detail and a []FieldError fills the errors member.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, opts ...any) error {
	status := ErrorToStatusCode(err)
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			pd.Errors = []FieldError{{Field: ve.Field, Reason: string(ve.Reason)}}
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
	}
	for _, opt := range opts {
		switch v := opt.(type) {
		case int:
			status = v
		case string:
			pd.Detail = v
		case []FieldError:
			if len(v) > 0 {
				pd.Errors = v
			}
		}
	}
	pd.Status = status
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAccount):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure it writes a 400 problem response and returns a nil input along with
// the result of writing that response.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var errs []FieldError
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, FieldError{Field: fe.Field(), Reason: fe.Tag()})
			}
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest, errs)
	}
	return &input, nil
}
