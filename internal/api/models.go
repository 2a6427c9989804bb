package api

import (
	"time"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/google/uuid"
)

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expires_at"`
}

// MessageResponse carries a human-readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// RuleRequest defines the payload for creating or replacing a rule.
type RuleRequest struct {
	Condition string `json:"condition" validate:"required,max=1024"`
}

// RuleResponse is the wire form of a rule.
type RuleResponse struct {
	ID        uuid.UUID `json:"id"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RuleMessageResponse pairs an outcome message with the affected rule.
type RuleMessageResponse struct {
	Message string       `json:"message"`
	Rule    RuleResponse `json:"rule"`
}

// CheckSentenceRequest is the payload of the check-sentence endpoint.
// Sentence is a pointer so a missing field can be told apart from "".
type CheckSentenceRequest struct {
	Sentence *string `json:"sentence"`
}

func ruleToResponse(rule *domain.Rule) RuleResponse {
	return RuleResponse{
		ID:        rule.ID,
		Condition: rule.Condition,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

func rulesToResponse(rules []domain.Rule) []RuleResponse {
	out := make([]RuleResponse, len(rules))
	for i := range rules {
		out[i] = ruleToResponse(&rules[i])
	}
	return out
}

func formatExpiry(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
