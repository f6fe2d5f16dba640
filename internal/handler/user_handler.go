package handler

import (
	"net/http"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles admin user management requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	users, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetDetail handles GET /api/admin/users/{id} and returns the user with
// their order history.
func (h *UserHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid user ID")
		return
	}

	detail, err := h.service.GetDetail(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// UpdateStatus handles PATCH /api/admin/users/{id}/status.
func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid user ID")
		return
	}

	var req model.UserStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
