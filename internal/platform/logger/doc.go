// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers (carrying the trace ID
// and user ID) travel in the context via WithLogger and FromContext.
package logger
