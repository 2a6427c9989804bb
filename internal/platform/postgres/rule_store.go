package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/platform/logger"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
	"github.com/google/uuid"
)

// PostgresRuleStore implements store.RuleStore on PostgreSQL.
type PostgresRuleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRuleStore creates a rule store. If logger is nil, a default
// logger will be used.
func NewPostgresRuleStore(db store.DBTX, logger *slog.Logger) *PostgresRuleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRuleStore{
		db:     db,
		logger: logger.With(slog.String("component", "rule_store")),
	}
}

var _ store.RuleStore = (*PostgresRuleStore)(nil)

// WithTx implements store.RuleStore.WithTx
func (s *PostgresRuleStore) WithTx(tx *sql.Tx) store.RuleStore {
	return &PostgresRuleStore{db: tx, logger: s.logger}
}

// Create implements store.RuleStore.Create
func (s *PostgresRuleStore) Create(ctx context.Context, rule *domain.Rule) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rule.Validate(); err != nil {
		log.Warn("rule validation failed during create",
			slog.String("error", err.Error()),
			slog.String("rule_id", rule.ID.String()))
		return err
	}

	query := `
		INSERT INTO rules (id, user_id, condition, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		rule.ID,
		rule.UserID,
		rule.Condition,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		return s.writeError(log, "create", rule, err)
	}

	log.Info("rule created",
		slog.String("rule_id", rule.ID.String()),
		slog.String("user_id", rule.UserID.String()))
	return nil
}

// GetByID implements store.RuleStore.GetByID
func (s *PostgresRuleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, condition, created_at, updated_at
		FROM rules
		WHERE id = $1
	`
	var rule domain.Rule
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rule.ID,
		&rule.UserID,
		&rule.Condition,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("rule not found", slog.String("rule_id", id.String()))
			return nil, store.ErrRuleNotFound
		}
		log.Error("failed to get rule",
			slog.String("rule_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("rule", "get", "database error", MapError(err))
	}

	rule.CreatedAt = rule.CreatedAt.UTC()
	rule.UpdatedAt = rule.UpdatedAt.UTC()
	return &rule, nil
}

// ListByUser implements store.RuleStore.ListByUser
func (s *PostgresRuleStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, condition, created_at, updated_at
		FROM rules
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list rules",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("rule", "list", "database error", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	rules := make([]domain.Rule, 0)
	for rows.Next() {
		var rule domain.Rule
		if err := rows.Scan(
			&rule.ID,
			&rule.UserID,
			&rule.Condition,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		); err != nil {
			log.Error("failed to scan rule row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("rule", "list", "scan error", err)
		}
		rule.CreatedAt = rule.CreatedAt.UTC()
		rule.UpdatedAt = rule.UpdatedAt.UTC()
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating rule rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("rule", "list", "iteration error", MapError(err))
	}

	log.Debug("listed rules",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(rules)))
	return rules, nil
}

// UpdateCondition implements store.RuleStore.UpdateCondition
func (s *PostgresRuleStore) UpdateCondition(ctx context.Context, rule *domain.Rule) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rule.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE rules
		SET condition = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, rule.Condition, rule.UpdatedAt, rule.ID)
	if err != nil {
		return s.writeError(log, "update", rule, err)
	}
	if err := CheckRowsAffected(result, store.ErrRuleNotFound); err != nil {
		log.Debug("rule not found for update", slog.String("rule_id", rule.ID.String()))
		return err
	}

	log.Info("rule condition updated", slog.String("rule_id", rule.ID.String()))
	return nil
}

// Delete implements store.RuleStore.Delete
func (s *PostgresRuleStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM rules WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete rule",
			slog.String("rule_id", id.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("rule", "delete", "database error", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrRuleNotFound); err != nil {
		return err
	}

	log.Info("rule deleted", slog.String("rule_id", id.String()))
	return nil
}

// writeError maps insert/update failures. Duplicates and missing owners are
// expected outcomes and returned bare; anything else is wrapped.
func (s *PostgresRuleStore) writeError(log *slog.Logger, op string, rule *domain.Rule, err error) error {
	mapped := MapError(err)
	switch {
	case errors.Is(mapped, store.ErrRuleExists):
		log.Info("duplicate rule condition",
			slog.String("rule_id", rule.ID.String()),
			slog.String("user_id", rule.UserID.String()))
		return mapped
	case IsForeignKeyViolation(err):
		log.Warn("rule owner does not exist",
			slog.String("user_id", rule.UserID.String()))
		return mapped
	}

	log.Error("failed to write rule",
		slog.String("operation", op),
		slog.String("rule_id", rule.ID.String()),
		slog.String("error", err.Error()))
	return store.NewStoreError("rule", op, "database error", mapped)
}
