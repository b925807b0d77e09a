// Package common holds the shared webapi response envelope, problem-details
// rendering and request binding.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	domaincommon "github.com/junubipay/paylink/pkg/domain/common"
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

// ErrorResponseJSON returns a response following RFC 9457 Problem Details.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
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
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// DomainErrorResponseJSON maps a domain error to the right HTTP shape.
// Field-keyed validation errors render as a 400 with the error map; sentinel
// errors map per ErrorToStatusCode.
func DomainErrorResponseJSON(c *fiber.Ctx, err error) error {
	var ferrs domaincommon.FieldErrors
	if errors.As(err, &ferrs) {
		return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", map[string]string(ferrs))
	}
	return ErrorResponseJSON(c, ErrorToStatusCode(err), "Request failed", err.Error())
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domaincommon.ErrLinkNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domaincommon.ErrMethodNotAllowed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domaincommon.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, domaincommon.ErrSessionClosed):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates its transport shape
// using go-playground/validator struct tags. Domain rules stay in the domain
// validators so field errors aggregate in one pass.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error()) //nolint: errcheck
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error()) //nolint: errcheck
		return nil, err
	}
	return &input, nil
}
