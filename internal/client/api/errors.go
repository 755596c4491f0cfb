package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by every operation while the client has
	// no server address or credential. It never reaches the network.
	ErrNotConfigured = errors.New("client is not configured")

	// ErrInvalidURL indicates the configured host/port could not be turned
	// into a usable request URL.
	ErrInvalidURL = errors.New("invalid server address")
)

// ServerError is an HTTP response with a status code outside 200-299.
// Message holds the raw response body text, or a fallback derived from the
// status code when the body is empty or not valid text.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// TransportError is a failure below the HTTP layer: DNS, connection refused,
// timeout. The underlying error is available via Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is a 2xx response whose body does not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response decoding failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
