package main

import (
	"net/http"

	"github.com/chenna14/Real-time-Data-Classification/internal/api"
	apiMiddleware "github.com/chenna14/Real-time-Data-Classification/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	ruleHandler := api.NewRuleHandler(app.ruleService)
	classificationHandler := api.NewClassificationHandler(app.classificationService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	limiter := apiMiddleware.NewRateLimiter(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/protected", api.Protected)

			r.Post("/classification", ruleHandler.CreateRule)
			r.Get("/classification/rules", ruleHandler.ListRules)
			r.Put("/classification/rules/{id}", ruleHandler.UpdateRule)
			r.Delete("/classification/rules/{id}", ruleHandler.DeleteRule)

			r.With(limiter.Limit).Post("/check-sentence", classificationHandler.CheckSentence)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
