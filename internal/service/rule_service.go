package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/events"
	"github.com/chenna14/Real-time-Data-Classification/internal/platform/logger"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
	"github.com/google/uuid"
)

// RuleService manages the rules of a single authenticated user.
type RuleService interface {
	// CreateRule compiles and stores a new rule for userID.
	// Returns ErrInvalidCondition or store.ErrRuleExists.
	CreateRule(ctx context.Context, userID uuid.UUID, condition string) (*domain.Rule, error)

	// ListRules returns the user's rules in evaluation order.
	ListRules(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error)

	// UpdateRule replaces the condition of a rule owned by userID.
	// Returns store.ErrRuleNotFound, ErrNotOwned, ErrInvalidCondition or
	// store.ErrRuleExists.
	UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, condition string) (*domain.Rule, error)

	// DeleteRule removes a rule owned by userID.
	// Returns store.ErrRuleNotFound or ErrNotOwned.
	DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error
}

type ruleServiceImpl struct {
	db         store.Beginner
	rules      store.RuleStore
	classifier classify.Service
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// RuleServiceOption configures optional RuleService behavior.
type RuleServiceOption func(*ruleServiceImpl)

// WithEventEmitter publishes a RuleEvent after every committed change.
func WithEventEmitter(emitter events.EventEmitter) RuleServiceOption {
	return func(s *ruleServiceImpl) {
		s.emitter = emitter
	}
}

// NewRuleService creates a new RuleService.
// It returns an error if any of the required dependencies are nil.
func NewRuleService(
	db store.Beginner,
	rules store.RuleStore,
	classifier classify.Service,
	logger *slog.Logger,
	opts ...RuleServiceOption,
) (RuleService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if rules == nil {
		return nil, domain.NewValidationError("rules", "cannot be nil", domain.ErrValidation)
	}
	if classifier == nil {
		return nil, domain.NewValidationError("classifier", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &ruleServiceImpl{
		db:         db,
		rules:      rules,
		classifier: classifier,
		logger:     logger.With(slog.String("component", "rule_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *ruleServiceImpl) CreateRule(
	ctx context.Context,
	userID uuid.UUID,
	condition string,
) (*domain.Rule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.classifier.Validate(condition); err != nil {
		log.Debug("rejected rule condition",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, invalidCondition(err)
	}

	rule, err := domain.NewRule(userID, condition)
	if err != nil {
		return nil, err
	}

	if err := s.rules.Create(ctx, rule); err != nil {
		if errors.Is(err, store.ErrRuleExists) {
			return nil, err
		}
		log.Error("failed to create rule",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("rule", "create", err)
	}

	log.Info("rule created",
		slog.String("user_id", userID.String()),
		slog.String("rule_id", rule.ID.String()))
	s.emit(ctx, log, events.RuleCreated, rule)
	return rule, nil
}

func (s *ruleServiceImpl) ListRules(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error) {
	rules, err := s.rules.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list rules",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("rule", "list", err)
	}
	return rules, nil
}

func (s *ruleServiceImpl) UpdateRule(
	ctx context.Context,
	userID, ruleID uuid.UUID,
	condition string,
) (*domain.Rule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.classifier.Validate(condition); err != nil {
		return nil, invalidCondition(err)
	}

	var updated *domain.Rule
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		rules := s.rules.WithTx(tx)

		rule, err := s.ownedRule(ctx, rules, userID, ruleID)
		if err != nil {
			return err
		}
		if err := rule.UpdateCondition(condition); err != nil {
			return err
		}
		if err := rules.UpdateCondition(ctx, rule); err != nil {
			return err
		}

		updated = rule
		return nil
	})
	if err != nil {
		return nil, s.expected(log, "update", ruleID, err)
	}

	log.Info("rule updated",
		slog.String("user_id", userID.String()),
		slog.String("rule_id", ruleID.String()))
	s.emit(ctx, log, events.RuleUpdated, updated)
	return updated, nil
}

func (s *ruleServiceImpl) DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *domain.Rule
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		rules := s.rules.WithTx(tx)

		rule, err := s.ownedRule(ctx, rules, userID, ruleID)
		if err != nil {
			return err
		}
		if err := rules.Delete(ctx, ruleID); err != nil {
			return err
		}

		deleted = rule
		return nil
	})
	if err != nil {
		return s.expected(log, "delete", ruleID, err)
	}

	log.Info("rule deleted",
		slog.String("user_id", userID.String()),
		slog.String("rule_id", ruleID.String()))
	s.emit(ctx, log, events.RuleDeleted, deleted)
	return nil
}

// emit publishes a change that is already committed, so a handler failure
// is logged rather than returned.
func (s *ruleServiceImpl) emit(ctx context.Context, log *slog.Logger, eventType string, rule *domain.Rule) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, events.NewRuleEvent(eventType, rule)); err != nil {
		log.Warn("failed to publish rule event",
			slog.String("event_type", eventType),
			slog.String("rule_id", rule.ID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *ruleServiceImpl) ownedRule(
	ctx context.Context,
	rules store.RuleStore,
	userID, ruleID uuid.UUID,
) (*domain.Rule, error) {
	rule, err := rules.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if !rule.IsOwnedBy(userID) {
		return nil, ErrNotOwned
	}
	return rule, nil
}

// expected passes sentinel errors through and wraps the rest.
func (s *ruleServiceImpl) expected(log *slog.Logger, op string, ruleID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, store.ErrRuleNotFound),
		errors.Is(err, ErrNotOwned),
		errors.Is(err, store.ErrRuleExists):
		log.Debug("rule "+op+" rejected",
			slog.String("rule_id", ruleID.String()),
			slog.String("error", err.Error()))
		return err
	}

	log.Error("failed to "+op+" rule",
		slog.String("rule_id", ruleID.String()),
		slog.String("error", err.Error()))
	return NewServiceError("rule", op, err)
}
