package store

import (
	"context"
	"database/sql"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/google/uuid"
)

// RuleStore defines the interface for rule persistence.
type RuleStore interface {
	// Create saves a new rule.
	// Returns ErrRuleExists if the user already has a rule with the same condition
	// and ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, rule *domain.Rule) error

	// GetByID retrieves a rule by ID.
	// Returns ErrRuleNotFound if the rule does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error)

	// ListByUser returns all rules of a user ordered by creation time, then ID.
	// A user without rules yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error)

	// UpdateCondition replaces the condition of an existing rule.
	// Returns ErrRuleNotFound or ErrRuleExists.
	UpdateCondition(ctx context.Context, rule *domain.Rule) error

	// Delete removes a rule.
	// Returns ErrRuleNotFound if the rule does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new RuleStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) RuleStore
}
