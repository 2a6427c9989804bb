package service

import (
	"context"
	"log/slog"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/platform/logger"
	"github.com/google/uuid"
)

// RuleLister loads the ordered rule set of a user.
type RuleLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error)
}

// ClassificationService checks sentences against the caller's rules.
type ClassificationService interface {
	// CheckSentence classifies *sentence against every rule of userID.
	// A nil sentence is an input error (classify.ErrInvalidSentence) and is
	// reported before any rule is loaded. Rules that cannot be evaluated
	// fail the verdict rather than the call.
	CheckSentence(ctx context.Context, userID uuid.UUID, sentence *string) (*classify.Verdict, error)
}

type classificationServiceImpl struct {
	rules      RuleLister
	classifier classify.Service
	logger     *slog.Logger
}

// NewClassificationService creates a new ClassificationService.
func NewClassificationService(
	rules RuleLister,
	classifier classify.Service,
	logger *slog.Logger,
) (ClassificationService, error) {
	if rules == nil {
		return nil, domain.NewValidationError("rules", "cannot be nil", domain.ErrValidation)
	}
	if classifier == nil {
		return nil, domain.NewValidationError("classifier", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &classificationServiceImpl{
		rules:      rules,
		classifier: classifier,
		logger:     logger.With(slog.String("component", "classification_service")),
	}, nil
}

func (s *classificationServiceImpl) CheckSentence(
	ctx context.Context,
	userID uuid.UUID,
	sentence *string,
) (*classify.Verdict, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if sentence == nil {
		return nil, classify.ErrInvalidSentence
	}

	rules, err := s.rules.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load rules for classification",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("classification", "check_sentence", err)
	}

	verdict := s.classifier.Classify(*sentence, rules)

	for _, d := range verdict.Diagnostics {
		log.Warn("rule could not be evaluated",
			slog.String("user_id", userID.String()),
			slog.String("rule_id", d.RuleID.String()),
			slog.Int("rule_index", d.Index),
			slog.String("error", d.Err.Error()))
	}

	log.Debug("sentence classified",
		slog.String("user_id", userID.String()),
		slog.Int("rule_count", len(rules)),
		slog.Int("failed_count", len(verdict.FailedRules)),
		slog.Bool("all_rules_satisfied", verdict.AllRulesSatisfied))

	return &verdict, nil
}
