package handler

import (
	"net/http"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products with filtering and pagination.
// Supported query parameters: category, q, featured, sort=newest,
// limit, offset.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ProductFilter{}
	filter.Limit, filter.Offset = pagination(r)

	if raw := r.URL.Query().Get("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			writeBadRequest(w, model.ErrCodeMissingField, "Invalid category parameter")
			return
		}
		filter.CategoryID = &categoryID
	}
	if q := r.URL.Query().Get("q"); q != "" {
		filter.Query = q
	}
	if r.URL.Query().Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}
	if r.URL.Query().Get("sort") == "newest" {
		filter.SortNewest = true
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Related handles GET /api/products/{id}/related.
func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	products, err := h.service.Related(r.Context(), id, queryInt(r, "limit", 4))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
