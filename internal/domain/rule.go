package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxConditionLength bounds the size of a stored condition in bytes.
const MaxConditionLength = 1024

// Rule validation errors
var (
	ErrRuleIDEmpty      = errors.New("rule ID cannot be empty")
	ErrRuleUserIDEmpty  = errors.New("rule user ID cannot be empty")
	ErrConditionEmpty   = errors.New("rule condition cannot be empty")
	ErrConditionTooLong = errors.New("rule condition exceeds maximum length")
)

// Rule is a single boolean condition over letter counts, owned by a user.
// The condition text is stored verbatim; two rules of the same user may not
// share byte-identical conditions.
type Rule struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRule creates a new Rule for the given user.
func NewRule(userID uuid.UUID, condition string) (*Rule, error) {
	now := time.Now().UTC()
	rule := &Rule{
		ID:        uuid.New(),
		UserID:    userID,
		Condition: condition,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	return rule, nil
}

// Validate checks if the Rule has valid data.
// It does not check that the condition compiles; see classify.Compile.
func (r *Rule) Validate() error {
	if r.ID == uuid.Nil {
		return ErrRuleIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrRuleUserIDEmpty
	}

	return validateCondition(r.Condition)
}

// UpdateCondition replaces the whole condition and bumps UpdatedAt.
// The rule is left unchanged if the new condition is invalid.
func (r *Rule) UpdateCondition(condition string) error {
	if err := validateCondition(condition); err != nil {
		return err
	}

	r.Condition = condition
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOwnedBy reports whether the rule belongs to userID.
func (r *Rule) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

func validateCondition(condition string) error {
	if strings.TrimSpace(condition) == "" {
		return ErrConditionEmpty
	}
	if len(condition) > MaxConditionLength {
		return ErrConditionTooLong
	}
	return nil
}
