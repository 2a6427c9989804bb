package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/chenna14/Real-time-Data-Classification/internal/api/shared"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/service/auth"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
	"github.com/google/uuid"
)

var errNotConfigured = errors.New("mock not configured")

type mockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn == nil {
		return errNotConfigured
	}
	return m.CreateFn(ctx, user)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, errNotConfigured
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn == nil {
		return nil, errNotConfigured
	}
	return m.GetByUsernameFn(ctx, username)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, errNotConfigured
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

type mockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, time.Time, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	return m.GenerateTokenFn(ctx, userID)
}

func (m *mockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

type mockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

func (m *mockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.CompareFn(hashedPassword, password)
}

type mockRuleService struct {
	CreateRuleFn func(ctx context.Context, userID uuid.UUID, condition string) (*domain.Rule, error)
	ListRulesFn  func(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error)
	UpdateRuleFn func(ctx context.Context, userID, ruleID uuid.UUID, condition string) (*domain.Rule, error)
	DeleteRuleFn func(ctx context.Context, userID, ruleID uuid.UUID) error
}

func (m *mockRuleService) CreateRule(ctx context.Context, userID uuid.UUID, condition string) (*domain.Rule, error) {
	return m.CreateRuleFn(ctx, userID, condition)
}

func (m *mockRuleService) ListRules(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error) {
	return m.ListRulesFn(ctx, userID)
}

func (m *mockRuleService) UpdateRule(
	ctx context.Context,
	userID, ruleID uuid.UUID,
	condition string,
) (*domain.Rule, error) {
	return m.UpdateRuleFn(ctx, userID, ruleID, condition)
}

func (m *mockRuleService) DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error {
	return m.DeleteRuleFn(ctx, userID, ruleID)
}

type ruleListerFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error)

func (f ruleListerFunc) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error) {
	return f(ctx, userID)
}

// asUser stands in for the auth middleware.
func asUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), userID)))
		})
	}
}
