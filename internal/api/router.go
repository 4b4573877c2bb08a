package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tobyheywood/wordguess/internal/api/handler"
	"github.com/tobyheywood/wordguess/internal/api/middleware"
	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/services/auth"
	"github.com/tobyheywood/wordguess/internal/services/game"
	"github.com/tobyheywood/wordguess/internal/services/report"
	"github.com/tobyheywood/wordguess/internal/services/words"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	GameController *game.Controller
	WordService    *words.Service
	ReportService  *report.Service
	Clock          clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	adminHandler := handler.NewAdminHandler(cfg.WordService, cfg.ReportService, cfg.Clock)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	playerOnly := middleware.RequireRole(model.RolePlayer)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (register/login are unauthenticated)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Game routes (authenticated players)
	gameRoutes := api.PathPrefix("/game").Subrouter()
	gameRoutes.Use(authMiddleware)
	gameRoutes.Use(playerOnly)
	gameRoutes.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost)
	gameRoutes.HandleFunc("/sessions/{id}", gameHandler.Get).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(adminOnly)
	admin.HandleFunc("/words", adminHandler.AddWord).Methods(http.MethodPost)
	admin.HandleFunc("/words", adminHandler.ListWords).Methods(http.MethodGet)
	admin.HandleFunc("/words/{id}", adminHandler.SetWordActive).Methods(http.MethodPatch)
	admin.HandleFunc("/reports/daily", adminHandler.DailyReport).Methods(http.MethodGet)
	admin.HandleFunc("/reports/accounts/{id}", adminHandler.AccountReport).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
