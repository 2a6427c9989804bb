package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckSentenceHandler(t *testing.T, userID uuid.UUID, lister ruleListerFunc) http.Handler {
	t.Helper()
	svc, err := service.NewClassificationService(lister, classify.NewDefaultService(), nil)
	require.NoError(t, err)
	return asUser(userID)(http.HandlerFunc(NewClassificationHandler(svc).CheckSentence))
}

func storedRules(userID uuid.UUID, conditions ...string) ruleListerFunc {
	return func(ctx context.Context, uid uuid.UUID) ([]domain.Rule, error) {
		rules := make([]domain.Rule, len(conditions))
		for i, c := range conditions {
			rules[i] = domain.Rule{ID: uuid.New(), UserID: uid, Condition: c}
		}
		return rules, nil
	}
}

func TestClassificationHandler_CheckSentence(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		rules      []string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all rules satisfied",
			rules:      []string{"A <= 1", "B <= 1", "C <= 1"},
			body:       `{"sentence":"abc"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"sentence":"abc","allRulesSatisfied":true}`,
		},
		{
			name:       "failed rule",
			rules:      []string{"A > 1", "B > 0"},
			body:       `{"sentence":"aaa"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"sentence":"aaa","allRulesSatisfied":false,"failedRules":[{"condition":"B > 0"}]}`,
		},
		{
			name:       "no rules",
			body:       `{"sentence":""}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"sentence":"","allRulesSatisfied":true}`,
		},
		{
			name:       "malformed stored rule fails closed",
			rules:      []string{"A >> 1"},
			body:       `{"sentence":"abc"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"sentence":"abc","allRulesSatisfied":false,"failedRules":[{"condition":"A >> 1"}]}`,
		},
		{
			name:       "missing sentence",
			rules:      []string{"A > 1"},
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid input: sentence is required and must be a string"}`,
		},
		{
			name:       "null sentence",
			body:       `{"sentence":null}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid input: sentence is required and must be a string"}`,
		},
		{
			name:       "number sentence",
			body:       `{"sentence":42}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid input: sentence is required and must be a string"}`,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid input: sentence is required and must be a string"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newCheckSentenceHandler(t, userID, storedRules(userID, tt.rules...))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/check-sentence", strings.NewReader(tt.body))
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestClassificationHandler_InputErrorSkipsStore(t *testing.T) {
	called := false
	h := newCheckSentenceHandler(t, uuid.New(), func(ctx context.Context, uid uuid.UUID) ([]domain.Rule, error) {
		called = true
		return nil, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/check-sentence", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestClassificationHandler_StoreFailure(t *testing.T) {
	h := newCheckSentenceHandler(t, uuid.New(), func(ctx context.Context, uid uuid.UUID) ([]domain.Rule, error) {
		return nil, errors.New("dial tcp 10.0.0.5:5432: connection refused")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/check-sentence", strings.NewReader(`{"sentence":"abc"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body["error"])
	assert.NotContains(t, rec.Body.String(), "5432")
}

func TestProtected(t *testing.T) {
	rec := httptest.NewRecorder()
	asUser(uuid.New())(http.HandlerFunc(Protected)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/protected", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"This is a protected route"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Protected(rec, httptest.NewRequest(http.MethodGet, "/api/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
