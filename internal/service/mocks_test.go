package service

import (
	"context"
	"database/sql"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRuleStore mocks the store.RuleStore interface.
// WithTx returns the same mock so expectations cover transactional calls.
type MockRuleStore struct {
	mock.Mock
}

var _ store.RuleStore = (*MockRuleStore)(nil)

func (m *MockRuleStore) Create(ctx context.Context, rule *domain.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}

func (m *MockRuleStore) UpdateCondition(ctx context.Context, rule *domain.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRuleStore) WithTx(tx *sql.Tx) store.RuleStore {
	return m
}
