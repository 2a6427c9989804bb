// Package api handles incoming HTTP requests, request validation and
// response formatting. Handlers translate HTTP concerns into calls on the
// services and map service errors to status codes without leaking internal
// details.
package api
