package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewRule(t *testing.T) {
	userID := uuid.New()

	rule, err := NewRule(userID, "A > 1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rule.ID == uuid.Nil {
		t.Error("Expected a generated rule ID")
	}
	if !rule.IsOwnedBy(userID) {
		t.Error("Expected rule to be owned by its creator")
	}
	if rule.IsOwnedBy(uuid.New()) {
		t.Error("Expected rule not to be owned by another user")
	}

	if _, err := NewRule(uuid.Nil, "A > 1"); err != ErrRuleUserIDEmpty {
		t.Errorf("Expected %v, got %v", ErrRuleUserIDEmpty, err)
	}
	if _, err := NewRule(userID, "   "); err != ErrConditionEmpty {
		t.Errorf("Expected %v, got %v", ErrConditionEmpty, err)
	}
	long := strings.Repeat("A", MaxConditionLength+1)
	if _, err := NewRule(userID, long); err != ErrConditionTooLong {
		t.Errorf("Expected %v, got %v", ErrConditionTooLong, err)
	}
}

func TestRuleConditionIsKeptVerbatim(t *testing.T) {
	rule, err := NewRule(uuid.New(), "  A > 1 ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rule.Condition != "  A > 1 " {
		t.Errorf("Expected condition to be stored verbatim, got %q", rule.Condition)
	}
}

func TestRuleUpdateCondition(t *testing.T) {
	rule, err := NewRule(uuid.New(), "A > 1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	rule.UpdatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := rule.UpdateCondition(""); err != ErrConditionEmpty {
		t.Errorf("Expected %v, got %v", ErrConditionEmpty, err)
	}
	if rule.Condition != "A > 1" {
		t.Errorf("Expected condition to be unchanged after failed update, got %q", rule.Condition)
	}

	if err := rule.UpdateCondition("B <= 2"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rule.Condition != "B <= 2" {
		t.Errorf("Expected updated condition, got %q", rule.Condition)
	}
	if !rule.UpdatedAt.After(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected UpdatedAt to advance")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("condition", "is required", nil)
	if err.Error() != "condition is required" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if err.Unwrap() != ErrValidation {
		t.Error("Expected nil sentinel to default to ErrValidation")
	}
}
