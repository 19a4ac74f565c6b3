package handler

import (
	"net/http"

	"github.com/srinix/gamehub/internal/web/games"
	"github.com/srinix/gamehub/internal/web/middleware"
)

// HomeHandler handles the home page and the static info pages
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeData is the template data for the home page
type HomeData struct {
	PageData
	Games []games.Game
}

// Home renders the game hub page, with the catalog when logged in
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	renderPage(w, "index", HomeData{
		PageData: PageData{Title: "Home", User: user},
		Games:    games.Catalog,
	})
}

// About renders the about page
func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "about", "About")
}

// Privacy renders the privacy policy page
func (h *HomeHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "privacy", "Privacy Policy")
}

// Terms renders the terms of service page
func (h *HomeHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "terms", "Terms of Service")
}

func (h *HomeHandler) static(w http.ResponseWriter, r *http.Request, name, title string) {
	user := middleware.GetUser(r.Context())
	renderPage(w, name, PageData{Title: title, User: user})
}
