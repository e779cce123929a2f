// Package common holds the shared HTTP response helpers: the success envelope,
// RFC 9457 problem details and request binding/validation.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	domainaccount "github.com/kobopay/accountsvc/pkg/domain/account"
	domaintransfer "github.com/kobopay/accountsvc/pkg/domain/transfer"
	"github.com/kobopay/accountsvc/pkg/provider"
	transfersvc "github.com/kobopay/accountsvc/pkg/service/transfer"
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

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The status is derived
// from err via ErrorToStatusCode unless an explicit status is provided.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extra ...any) error {
	status := ErrorToStatusCode(err)
	detail := ""
	for _, e := range extra {
		switch v := e.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if detail == "" && err != nil {
		detail = err.Error()
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorResponseJSON writes a problem response with an explicit status.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to HTTP status codes. The taxonomy is
// deliberately fine-grained: a malformed request, missing funds, an unreachable
// gateway and a remote decline must stay distinguishable to callers.
func ErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusBadRequest
	case errors.Is(err, domaintransfer.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domainaccount.ErrAccountNotFound),
		errors.Is(err, domainaccount.ErrCustomerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domainaccount.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, provider.ErrGatewayUnavailable),
		errors.Is(err, provider.ErrGatewayEmptyResponse):
		return fiber.StatusBadGateway
	case errors.Is(err, transfersvc.ErrLedgerConflict):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New()

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure the 400 problem response is written here
// and (nil, nil) is returned, so handlers must not pass the result to the app
// error handler (it would overwrite the response already written).
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
