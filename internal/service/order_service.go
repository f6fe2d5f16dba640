package service

import (
	"context"
	"fmt"
	"time"

	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create places an order. Line items capture the discounted price at
// purchase time so later catalogue edits never change past orders. The
// order and its items are written in one transaction; the user's server
// cart is cleared after the commit.
func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.Order, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, model.ErrInvalidQuantity
		}
	}
	if req.Shipping < 0 || req.Tax < 0 {
		return nil, model.ErrInvalidTotal
	}
	if err := validateAddress(&req.Address); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up order products")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	byID := make(map[uuid.UUID]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	now := time.Now()
	orderID := uuid.New()

	var subtotal float64
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		product, ok := byID[reqItem.ProductID]
		if !ok {
			return nil, model.ErrProductNotFound
		}
		price := product.DiscountedPrice()
		subtotal += price * float64(reqItem.Quantity)
		items = append(items, model.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     price,
			Quantity:  reqItem.Quantity,
		})
	}
	subtotal = model.Round2(subtotal)

	order := &model.Order{
		ID:            orderID,
		UserID:        userID,
		Items:         items,
		Address:       req.Address,
		Subtotal:      subtotal,
		Shipping:      model.Round2(req.Shipping),
		Tax:           model.Round2(req.Tax),
		Total:         model.Round2(subtotal + req.Shipping + req.Tax),
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to insert order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to insert order items")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to commit order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Cart clearing is outside the transaction and best-effort: a
	// placed order with a stale cart beats a failed checkout.
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart after order")
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("user_id", userID.String()).
		Float64("total", order.Total).
		Int("items", len(items)).
		Msg("order created")

	return order, nil
}

// GetForUser retrieves an order visible to the caller. Owners see their
// own orders; admins see all. A foreign order reads as not found rather
// than forbidden so order IDs are not probeable.
func (s *orderService) GetForUser(ctx context.Context, id, userID uuid.UUID, admin bool) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	if !admin && order.UserID != userID {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Order, error) {
	limit, offset = clampPage(limit, offset)
	orders, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *orderService) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	limit, offset = clampPage(limit, offset)
	orders, err := s.orderRepo.ListAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// UpdateStatus sets the order status. Any recognised status is accepted
// regardless of the current one.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !model.ValidOrderStatus(status) {
		return model.ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return model.ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", order.Status).
		Str("to", status).
		Msg("order status updated")

	return nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !model.ValidPaymentStatus(status) {
		return model.ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if order == nil {
		return model.ErrOrderNotFound
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update payment status")
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return nil
}

// validateAddress checks the required shipping fields.
func validateAddress(a *model.Address) error {
	if a.Line1 == "" || a.City == "" || a.PostalCode == "" || a.Country == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Shipping address is incomplete")
	}
	return nil
}

// clampPage applies the shared pagination bounds.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
