// Package shared holds request context keys, JSON decoding and response
// helpers used by both the api handlers and the api middleware.
package shared
