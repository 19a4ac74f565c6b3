package handler

import (
	"encoding/json"
	"net/http"

	"github.com/srinix/gamehub/internal/api/apierr"
	"github.com/srinix/gamehub/internal/api/request"
	"github.com/srinix/gamehub/internal/api/response"
	"github.com/srinix/gamehub/internal/services/contact"
	"github.com/srinix/gamehub/internal/web/middleware"
)

// ContactHandler serves the contact page and stores submissions
type ContactHandler struct {
	contactService *contact.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contact.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Page renders the contact page
func (h *ContactHandler) Page(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	renderPage(w, "contact", PageData{Title: "Contact", User: user})
}

// Submit handles the JSON form submission from the contact page
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.contactService.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Your message has been received!"})
}
