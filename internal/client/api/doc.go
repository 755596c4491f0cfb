// Package api contains the protocol client for the remote blog server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     full operation set: post listing/detail/create/delete, per-post and
//     pending comment listing, comment moderation and deletion, plus a
//     reachability probe.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that builds
//     requests against the configured base address, attaches the API key
//     header on authenticated operations, and classifies every failure.
//
// # Error Handling
//
// Failures are checked values, never panics and never silently recovered:
//
//   - ErrNotConfigured — operation attempted without address or credential;
//     guaranteed not to touch the network.
//   - ErrInvalidURL    — the configured address cannot form a request URL.
//   - TransportError   — DNS, connection or timeout failure below HTTP.
//   - ServerError      — non-2xx status; carries the code and raw body text.
//   - DecodeError      — 2xx body that does not match the expected shape.
//
// Match sentinels with errors.Is and typed errors with errors.As. Retry
// policy belongs to callers; this package performs none.
package api
