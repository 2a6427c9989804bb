package events

import (
	"context"
	"log/slog"

	"github.com/chenna14/Real-time-Data-Classification/internal/platform/logger"
)

// AuditLogHandler writes one INFO line per rule change.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler. The request logger in ctx,
// when present, is preferred so audit lines carry the trace ID.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogHandler{logger: logger.With("component", "rule_audit")}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *RuleEvent) error {
	logger.FromContextOrDefault(ctx, h.logger).Info("rule changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("user_id", event.UserID.String()),
		slog.String("rule_id", event.RuleID.String()),
		slog.String("condition", event.Condition),
		slog.Time("occurred_at", event.OccurredAt))
	return nil
}
