package handler

import (
	"net/http"

	"shopfront/internal/middleware"
	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist-related HTTP requests. All routes
// require an authenticated user.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// Get handles GET /api/wishlist.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	items, err := h.service.Get(r.Context(), user.ID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/wishlist/items.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var req model.AddToWishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := h.service.Add(r.Context(), user.ID, req.ProductID); err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.Get(w, r)
}

// Remove handles DELETE /api/wishlist/items/{id}.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	productID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	if err := h.service.Remove(r.Context(), user.ID, productID); err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.Get(w, r)
}

// Clear handles DELETE /api/wishlist.
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	if err := h.service.Clear(r.Context(), user.ID); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
