package handler

import (
	"net/http"

	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/web/templates"
)

// PageData carries the fields every page template needs
type PageData struct {
	Title string
	User  *model.User
}

func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
