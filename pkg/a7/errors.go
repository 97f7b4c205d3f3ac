package a7

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every failure surfaced by the SDK wraps exactly one
// of these, so callers can classify with errors.Is regardless of the
// resource that produced it.
var (
	// ErrAuthentication covers 401 and 403 responses (bad, missing, or
	// expired token, or insufficient permissions).
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound covers 404 responses: no resource at the requested
	// market/date/segment/security coordinates.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation covers 400 and 422 responses as well as arguments
	// rejected locally before any request is made.
	ErrValidation = errors.New("invalid request parameters")

	// ErrRateLimit covers 429 responses. The SDK does not retry; the
	// caller decides on backoff.
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrServer covers 5xx responses and malformed payloads on endpoints
	// that promised JSON.
	ErrServer = errors.New("server error")

	// ErrTimeout is returned when no response arrives within the
	// configured timeout. Distinct from ErrServer: the request may or may
	// not have been processed.
	ErrTimeout = errors.New("request timed out")

	// ErrConnection covers transport-level failures before any HTTP
	// status was received (DNS, dial, TLS).
	ErrConnection = errors.New("connection failed")
)

// APIError is the concrete error type returned by every SDK operation that
// fails. It wraps one of the sentinel kinds and carries whatever context
// was available: the attempted path, the HTTP status, and a snippet of the
// server's response body.
type APIError struct {
	Kind       error
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Path != "":
		return fmt.Sprintf("%s: HTTP %d on %s: %s", e.Kind, e.StatusCode, e.Path, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *APIError) Unwrap() error {
	return e.Kind
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool { return errors.Is(err, ErrAuthentication) }

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is a rejected-input failure, local or remote.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsRateLimit reports whether err is a throttling response.
func IsRateLimit(err error) bool { return errors.Is(err, ErrRateLimit) }

// IsServer reports whether err is a server-side failure.
func IsServer(err error) bool { return errors.Is(err, ErrServer) }

// IsTimeout reports whether err is a timeout.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// newValidationError builds the local-rejection variant: no status code,
// no path, the request never left the process.
func newValidationError(format string, args ...interface{}) error {
	return &APIError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// mapStatus translates an HTTP status code into a sentinel kind.
func mapStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return ErrAuthentication
	case status == 404:
		return ErrNotFound
	case status == 400 || status == 422:
		return ErrValidation
	case status == 429:
		return ErrRateLimit
	default:
		return ErrServer
	}
}
