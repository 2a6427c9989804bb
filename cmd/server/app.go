package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/chenna14/Real-time-Data-Classification/internal/config"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/events"
	"github.com/chenna14/Real-time-Data-Classification/internal/platform/postgres"
	"github.com/chenna14/Real-time-Data-Classification/internal/service"
	"github.com/chenna14/Real-time-Data-Classification/internal/service/auth"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	ruleStore store.RuleStore

	jwtService            auth.JWTService
	passwordVerifier      auth.PasswordVerifier
	classifier            classify.Service
	eventEmitter          *events.InMemoryEventEmitter
	ruleService           service.RuleService
	classificationService service.ClassificationService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
	app.ruleStore = postgres.NewPostgresRuleStore(db, logger)

	app.classifier = classify.NewService(classify.WithWorkers(cfg.Classification.Workers))

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	app.ruleService, err = service.NewRuleService(db, app.ruleStore, app.classifier, logger,
		service.WithEventEmitter(app.eventEmitter))
	if err != nil {
		return nil, fmt.Errorf("failed to create rule service: %w", err)
	}

	app.classificationService, err = service.NewClassificationService(app.ruleStore, app.classifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
