package handler

import (
	"net/http"

	"shopfront/internal/middleware"
	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests. All routes require
// an authenticated user.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// CartResponse is the cart with its derived total.
type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	items, err := h.service.Get(r.Context(), user.ID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, CartResponse{
		Items: items,
		Total: model.CartTotal(items),
	})
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var req model.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := h.service.Add(r.Context(), user.ID, req.ProductID, req.Quantity); err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.Get(w, r)
}

// UpdateQuantity handles PUT /api/cart/items/{id}, where {id} is the
// product ID.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	productID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	var req model.UpdateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), user.ID, productID, req.Quantity); err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.Get(w, r)
}

// Remove handles DELETE /api/cart/items/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
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

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	if err := h.service.Clear(r.Context(), user.ID); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
