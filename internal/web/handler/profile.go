package handler

import (
	"net/http"

	"github.com/srinix/gamehub/internal/services/ledger"
	"github.com/srinix/gamehub/internal/web/middleware"
)

// ProfileHandler renders per-user play statistics
type ProfileHandler struct {
	ledgerService *ledger.Service
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ledgerService *ledger.Service) *ProfileHandler {
	return &ProfileHandler{
		ledgerService: ledgerService,
	}
}

// ProfileData is the template data for the profile page
type ProfileData struct {
	PageData
	Stats              *ledger.UserStats
	CreatedAtFormatted string
	LastLoginFormatted string
}

// Profile renders the profile page with per-game stats and totals
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	stats, err := h.ledgerService.GetUserStats(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	createdAt := "Unknown"
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.UTC().Format("2006-01-02")
	}

	lastLogin := "Never"
	if user.LastLogin != nil {
		lastLogin = user.LastLogin.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	renderPage(w, "profile", ProfileData{
		PageData:           PageData{Title: "Profile", User: user},
		Stats:              stats,
		CreatedAtFormatted: createdAt,
		LastLoginFormatted: lastLogin,
	})
}
