package handler

import (
	"net/http"

	"github.com/srinix/gamehub/internal/api/response"
	"github.com/srinix/gamehub/internal/services/ledger"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	ledgerService *ledger.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(ledgerService *ledger.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		ledgerService: ledgerService,
	}
}

// Leaderboards handles GET /api/leaderboards
func (h *LeaderboardHandler) Leaderboards(w http.ResponseWriter, r *http.Request) {
	topGames, err := h.ledgerService.TopGamesByPlays(r.Context(), ledger.DefaultLeaderboardLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	topPlayers, err := h.ledgerService.TopPlayersByPlays(r.Context(), ledger.DefaultLeaderboardLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardsFromRanks(topGames, topPlayers))
}
