package handler

import (
	"net/http"

	"shopfront/internal/middleware"
	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var req model.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	order, err := h.service.Create(r.Context(), user.ID, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListMine handles GET /api/orders and lists the caller's own orders.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	limit, offset := pagination(r)

	orders, err := h.service.ListByUser(r.Context(), user.ID, limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id}. Customers can only fetch their
// own orders; admins can fetch any.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	order, err := h.service.GetForUser(r.Context(), id, user.ID, user.Role == model.RoleAdmin)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// StatusOptions handles GET /api/orders/{id}/status-options and lists
// the statuses an order can be moved to from its current one.
func (h *OrderHandler) StatusOptions(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	order, err := h.service.GetForUser(r.Context(), id, user.ID, user.Role == model.RoleAdmin)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.NextStatusOptions(order.Status))
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	orders, err := h.service.ListAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	var req model.OrderStatusRequest
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

// UpdatePaymentStatus handles PATCH /api/admin/orders/{id}/payment-status.
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid order ID")
		return
	}

	var req model.PaymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := h.service.UpdatePaymentStatus(r.Context(), id, req.PaymentStatus); err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
