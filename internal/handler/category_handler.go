package handler

import (
	"net/http"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /api/categories/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid category ID")
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// Update handles PUT /api/admin/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid category ID")
		return
	}

	var req model.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	category, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Delete handles DELETE /api/admin/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid category ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
