package handler

import (
	"encoding/json"
	"net/http"

	"github.com/srinix/gamehub/internal/api/request"
	"github.com/srinix/gamehub/internal/api/response"
	"github.com/srinix/gamehub/internal/services/auth"
)

// AccountHandler handles registration and login endpoints
type AccountHandler struct {
	authService *auth.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(authService *auth.Service) *AccountHandler {
	return &AccountHandler{
		authService: authService,
	}
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewInvalidRequestError("username and password are required"))
		return
	}

	if _, err := h.authService.Register(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "Registration successful"})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Browser clients carry the session as a cookie; the CLI uses the
	// token from the body as a bearer token.
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session.Token,
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.JSON(w, http.StatusOK, response.Login{
		Message:      "Login successful",
		Username:     session.User.Username,
		SessionToken: session.Token,
	})
}
