// Package common contains shared constants and helpers used across
// blogsync components.
package common

const (
	// APIKeyHeaderName carries the credential on authenticated requests.
	// The key value itself must never be logged.
	APIKeyHeaderName = "X-API-KEY"

	// RequestIDHeaderName carries a client-generated id for correlating
	// a request with its log lines.
	RequestIDHeaderName = "X-Request-Id"
)
