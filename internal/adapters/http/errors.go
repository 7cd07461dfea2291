package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: bad_request, not_found, provider_timeout, etc.
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

// errNotFound returns a 404 error.
func errNotFound(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusNotFound, "not_found", msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusInternalServerError, "internal_error", msg)
}

// domainStatus returns the HTTP status and error code for a service error.
// ok is false for errors that carry no domain kind.
func domainStatus(err error) (status int, code string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "bad_request", true
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "not_found", true
	case errors.Is(err, domain.ErrProviderTimeout):
		return fiber.StatusGatewayTimeout, "provider_timeout", true
	case errors.Is(err, domain.ErrProviderStatus),
		errors.Is(err, domain.ErrMalformedPayload),
		errors.Is(err, domain.ErrProviderUnavailable):
		return fiber.StatusBadGateway, domain.ErrorKind(err), true
	}
	return fiber.StatusInternalServerError, "internal_error", false
}

// errFromDomain maps a service error onto its HTTP status by error kind.
func errFromDomain(c *fiber.Ctx, err error) error {
	if status, code, ok := domainStatus(err); ok {
		return newError(c, status, code, err.Error())
	}
	LoggerFromCtx(c.UserContext()).Error("unhandled error", "path", c.Path(), "error", err)
	return errInternal(c, "internal error")
}

