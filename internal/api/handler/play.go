package handler

import (
	"encoding/json"
	"net/http"

	"github.com/srinix/gamehub/internal/api/middleware"
	"github.com/srinix/gamehub/internal/api/request"
	"github.com/srinix/gamehub/internal/api/response"
	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/services/ledger"
)

// PlayHandler handles play tracking endpoints
type PlayHandler struct {
	ledgerService *ledger.Service
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(ledgerService *ledger.Service) *PlayHandler {
	return &PlayHandler{
		ledgerService: ledgerService,
	}
}

// TrackPlay handles POST /api/track_play
func (h *PlayHandler) TrackPlay(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.TrackPlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.GameTitle == "" || req.Duration == nil {
		WriteError(w, model.ErrInvalidGameTitle)
		return
	}

	if err := h.ledgerService.RecordPlay(r.Context(), user.ID, req.GameTitle, *req.Duration); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Play tracked successfully"})
}
