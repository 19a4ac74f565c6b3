package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/srinix/gamehub/internal/api/handler"
	"github.com/srinix/gamehub/internal/api/middleware"
	"github.com/srinix/gamehub/internal/services/auth"
	"github.com/srinix/gamehub/internal/services/ledger"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	LedgerService *ledger.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	playHandler := handler.NewPlayHandler(cfg.LedgerService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LedgerService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Account routes (no auth required)
	r.HandleFunc("/register", accountHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", accountHandler.Login).Methods(http.MethodPost)

	// API subrouter
	api := r.PathPrefix("/api").Subrouter()

	// Leaderboards are public
	api.HandleFunc("/leaderboards", leaderboardHandler.Leaderboards).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Play tracking requires a session
	tracked := api.NewRoute().Subrouter()
	tracked.Use(authMiddleware)
	tracked.HandleFunc("/track_play", playHandler.TrackPlay).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
