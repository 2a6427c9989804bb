// Package middleware provides the HTTP middleware of the API: request
// tracing, JWT authentication and per-client rate limiting.
package middleware
