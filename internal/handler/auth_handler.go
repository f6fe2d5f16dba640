package handler

import (
	"net/http"
	"strings"

	"shopfront/internal/middleware"
	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me and returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		writeError(w, model.NewDomainError(model.ErrCodeUnauthorised, "Not authenticated"), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. The response is 204 whether or
// not the token could be revoked; clients always drop their copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		h.service.Logout(r.Context(), strings.TrimSpace(parts[1]))
	}

	w.WriteHeader(http.StatusNoContent)
}
