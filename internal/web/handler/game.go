package handler

import (
	"net/http"

	"github.com/srinix/gamehub/internal/web/games"
	"github.com/srinix/gamehub/internal/web/middleware"
)

// GameHandler renders session-gated game pages
type GameHandler struct{}

// NewGameHandler creates a new GameHandler
func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

// GameData is the template data for a game page
type GameData struct {
	PageData
	Game games.Game
}

// Page returns a handler rendering the page for one catalog entry
func (h *GameHandler) Page(game games.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.GetUser(r.Context())

		renderPage(w, "game", GameData{
			PageData: PageData{Title: game.Title, User: user},
			Game:     game,
		})
	}
}
