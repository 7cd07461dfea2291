package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a country, place or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProviderTimeout is returned when an upstream data provider did not
	// answer in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderStatus is the sentinel wrapped by ProviderStatusError.
	ErrProviderStatus = errors.New("provider returned non-2xx status")

	// ErrProviderUnavailable is returned when an upstream data provider
	// cannot be reached or is not configured.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMalformedPayload is returned when an upstream payload cannot be
	// decoded or lacks required fields.
	ErrMalformedPayload = errors.New("malformed provider payload")
)

// ProviderStatusError carries the status code and body of a non-2xx
// upstream response.
type ProviderStatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *ProviderStatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Code, e.Body)
}

// Unwrap lets errors.Is match ErrProviderStatus.
func (e *ProviderStatusError) Unwrap() error {
	return ErrProviderStatus
}

// Invalid builds an ErrInvalidInput with a message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ErrorKind names the kind of a domain error for API payloads.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrProviderTimeout):
		return "provider_timeout"
	case errors.Is(err, ErrProviderStatus):
		return "provider_status"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed_payload"
	default:
		return "internal"
	}
}
