package handler

import (
	"net/http"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// TranslationHandler handles translation and language HTTP requests.
type TranslationHandler struct {
	service service.TranslationService
	logger  zerolog.Logger
}

// NewTranslationHandler creates a new translation handler.
func NewTranslationHandler(service service.TranslationService, logger zerolog.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		logger:  logger.With().Str("handler", "translation").Logger(),
	}
}

// Languages handles GET /api/languages.
func (h *TranslationHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.Languages(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, languages)
}

// Bundle handles GET /api/translations/{language} and returns the
// nested translation mapping for one language.
func (h *TranslationHandler) Bundle(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	bundle, err := h.service.Bundle(r.Context(), language)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// List handles GET /api/admin/translations.
func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	entries, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Upsert handles PUT /api/admin/translations.
func (h *TranslationHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req model.TranslationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	entry, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/admin/translations/{id}.
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid translation ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
