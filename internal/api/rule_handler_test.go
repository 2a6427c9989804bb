package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/service"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuleRouter(userID uuid.UUID, svc service.RuleService) http.Handler {
	h := NewRuleHandler(svc)
	r := chi.NewRouter()
	r.Use(asUser(userID))
	r.Post("/api/classification", h.CreateRule)
	r.Get("/api/classification/rules", h.ListRules)
	r.Put("/api/classification/rules/{id}", h.UpdateRule)
	r.Delete("/api/classification/rules/{id}", h.DeleteRule)
	return r
}

func TestRuleHandler_CreateRule(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "created", body: `{"condition":"A > 1"}`, wantStatus: http.StatusCreated},
		{
			name:       "duplicate",
			body:       `{"condition":"A > 1"}`,
			err:        store.ErrRuleExists,
			wantStatus: http.StatusConflict,
			wantError:  "Rule with this condition already exists. Please update the existing rule.",
		},
		{
			name:       "does not compile",
			body:       `{"condition":"A + 1"}`,
			err:        fmt.Errorf("%w: %w", service.ErrInvalidCondition, classify.ErrNotBoolean),
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid condition: condition does not evaluate to a boolean",
		},
		{
			name:       "missing condition",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid condition: required field",
		},
		{
			name:       "too long",
			body:       `{"condition":"` + strings.Repeat("A", 1025) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid condition: too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRuleService{CreateRuleFn: func(ctx context.Context, uid uuid.UUID, condition string) (*domain.Rule, error) {
				assert.Equal(t, userID, uid)
				if tt.err != nil {
					return nil, tt.err
				}
				return domain.NewRule(uid, condition)
			}}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/classification", strings.NewReader(tt.body))
			newRuleRouter(userID, svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.Equal(t, "Rule created successfully", body["message"])
			rule := body["rule"].(map[string]any)
			assert.Equal(t, "A > 1", rule["condition"])
		})
	}
}

func TestRuleHandler_ListRules(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := &mockRuleService{ListRulesFn: func(ctx context.Context, uid uuid.UUID) ([]domain.Rule, error) {
		return []domain.Rule{
			{ID: uuid.New(), UserID: uid, Condition: "A > 1", CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New(), UserID: uid, Condition: "B > 1", CreatedAt: now, UpdatedAt: now},
		}, nil
	}}

	rec := httptest.NewRecorder()
	newRuleRouter(userID, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/classification/rules", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rules []RuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rules))
	require.Len(t, rules, 2)
	assert.Equal(t, "A > 1", rules[0].Condition)
	assert.Equal(t, "B > 1", rules[1].Condition)
	assert.NotContains(t, rec.Body.String(), "user_id")
}

func TestRuleHandler_UpdateAndDelete(t *testing.T) {
	userID := uuid.New()
	ruleID := uuid.New()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"update", http.MethodPut, "/api/classification/rules/" + ruleID.String(), `{"condition":"B == 2"}`, nil, http.StatusOK, "Rule updated successfully"},
		{"update missing", http.MethodPut, "/api/classification/rules/" + ruleID.String(), `{"condition":"B == 2"}`, store.ErrRuleNotFound, http.StatusNotFound, ""},
		{"update not owned", http.MethodPut, "/api/classification/rules/" + ruleID.String(), `{"condition":"B == 2"}`, service.ErrNotOwned, http.StatusForbidden, ""},
		{"update bad id", http.MethodPut, "/api/classification/rules/not-a-uuid", `{"condition":"B == 2"}`, nil, http.StatusBadRequest, ""},
		{"delete", http.MethodDelete, "/api/classification/rules/" + ruleID.String(), "", nil, http.StatusOK, "Rule deleted successfully"},
		{"delete missing", http.MethodDelete, "/api/classification/rules/" + ruleID.String(), "", store.ErrRuleNotFound, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRuleService{
				UpdateRuleFn: func(ctx context.Context, uid, rid uuid.UUID, condition string) (*domain.Rule, error) {
					assert.Equal(t, ruleID, rid)
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.Rule{ID: rid, UserID: uid, Condition: condition}, nil
				},
				DeleteRuleFn: func(ctx context.Context, uid, rid uuid.UUID) error {
					assert.Equal(t, ruleID, rid)
					return tt.err
				},
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			newRuleRouter(userID, svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}
}

func TestRuleHandler_RequiresUser(t *testing.T) {
	h := NewRuleHandler(&mockRuleService{})
	rec := httptest.NewRecorder()
	h.ListRules(rec, httptest.NewRequest(http.MethodGet, "/api/classification/rules", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
