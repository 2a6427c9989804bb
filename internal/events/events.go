package events

import (
	"context"
	"time"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/google/uuid"
)

// Rule event types.
const (
	RuleCreated = "rule.created"
	RuleUpdated = "rule.updated"
	RuleDeleted = "rule.deleted"
)

// RuleEvent records a committed change to one rule.
type RuleEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of RuleCreated, RuleUpdated or RuleDeleted
	Type string `json:"type"`

	UserID uuid.UUID `json:"user_id"`
	RuleID uuid.UUID `json:"rule_id"`

	// Condition is the condition after the change, or the removed one for
	// RuleDeleted.
	Condition string `json:"condition"`

	OccurredAt time.Time `json:"occurred_at"`
}

// NewRuleEvent creates a RuleEvent of the given type for rule.
func NewRuleEvent(eventType string, rule *domain.Rule) *RuleEvent {
	return &RuleEvent{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     rule.UserID,
		RuleID:     rule.ID,
		Condition:  rule.Condition,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *RuleEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *RuleEvent) error
}
