package api

import (
	"net/http"

	"github.com/chenna14/Real-time-Data-Classification/internal/api/shared"
	"github.com/chenna14/Real-time-Data-Classification/internal/service"
)

// RuleHandler exposes the caller's rules.
type RuleHandler struct {
	rules service.RuleService
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(rules service.RuleService) *RuleHandler {
	return &RuleHandler{rules: rules}
}

// CreateRule handles POST /api/classification.
func (h *RuleHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req RuleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rule, err := h.rules.CreateRule(r.Context(), userID, req.Condition)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RuleMessageResponse{
		Message: "Rule created successfully",
		Rule:    ruleToResponse(rule),
	})
}

// ListRules handles GET /api/classification/rules.
func (h *RuleHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	rules, err := h.rules.ListRules(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rulesToResponse(rules))
}

// UpdateRule handles PUT /api/classification/rules/{id}.
func (h *RuleHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	userID, ruleID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RuleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rule, err := h.rules.UpdateRule(r.Context(), userID, ruleID, req.Condition)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RuleMessageResponse{
		Message: "Rule updated successfully",
		Rule:    ruleToResponse(rule),
	})
}

// DeleteRule handles DELETE /api/classification/rules/{id}.
func (h *RuleHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	userID, ruleID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.rules.DeleteRule(r.Context(), userID, ruleID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Rule deleted successfully"})
}
