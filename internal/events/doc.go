// Package events publishes rule lifecycle changes to interested handlers.
//
// Services emit a RuleEvent after a change is committed, without knowing
// which handlers consume it. The server registers an AuditLogHandler that
// records every change as a structured log line.
package events
