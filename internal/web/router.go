package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/srinix/gamehub/internal/services/auth"
	"github.com/srinix/gamehub/internal/services/contact"
	"github.com/srinix/gamehub/internal/services/ledger"
	"github.com/srinix/gamehub/internal/web/games"
	"github.com/srinix/gamehub/internal/web/handler"
	"github.com/srinix/gamehub/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	LedgerService  *ledger.Service
	ContactService *contact.Service
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	profileHandler := handler.NewProfileHandler(cfg.LedgerService)
	contactHandler := handler.NewContactHandler(cfg.ContactService)
	gameHandler := handler.NewGameHandler()

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing the user in the nav)
	public := r.NewRoute().Subrouter()
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/about", homeHandler.About).Methods(http.MethodGet)
	public.HandleFunc("/privacy", homeHandler.Privacy).Methods(http.MethodGet)
	public.HandleFunc("/terms", homeHandler.Terms).Methods(http.MethodGet)
	public.HandleFunc("/contact", contactHandler.Page).Methods(http.MethodGet)
	public.HandleFunc("/contact", contactHandler.Submit).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Protected routes (require a session; redirect home otherwise)
	protected := r.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/profile", profileHandler.Profile).Methods(http.MethodGet)

	// One gated route per catalog entry
	for _, game := range games.Catalog {
		protected.HandleFunc("/"+game.Slug, gameHandler.Page(game)).Methods(http.MethodGet)
	}

	return r
}
