package repository

import (
	"context"
	"fmt"
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const orderColumns = `id, user_id, address_line1, address_line2, address_city, address_postal_code, address_country,
	subtotal, shipping, tax, total, status, payment_status, created_at, updated_at`

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, user_id, address_line1, address_line2, address_city, address_postal_code, address_country,
			subtotal, shipping, tax, total, status, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := tx.Exec(ctx, query,
		order.ID, order.UserID,
		order.Address.Line1, order.Address.Line2, order.Address.City, order.Address.PostalCode, order.Address.Country,
		order.Subtotal, order.Shipping, order.Tax, order.Total,
		order.Status, order.PaymentStatus, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// CreateOrderItems inserts the order's line items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.ID, item.OrderID, item.ProductID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			r.logger.Error().Err(err).
				Str("order_id", item.OrderID.String()).
				Str("product_id", item.ProductID.String()).
				Msg("failed to insert order item")
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return nil
}

// GetByID retrieves an order with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"

	var o model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID,
		&o.Address.Line1, &o.Address.Line2, &o.Address.City, &o.Address.PostalCode, &o.Address.Country,
		&o.Subtotal, &o.Shipping, &o.Tax, &o.Total,
		&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.itemsForOrders(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]

	return &o, nil
}

// ListByUser retrieves a user's orders, newest first, items included.
func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3"
	return r.list(ctx, query, userID, limit, offset)
}

// ListAll retrieves all orders, newest first, items included.
func (r *orderRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2"
	return r.list(ctx, query, limit, offset)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	var ids []uuid.UUID
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID, &o.UserID,
			&o.Address.Line1, &o.Address.Line2, &o.Address.City, &o.Address.PostalCode, &o.Address.Country,
			&o.Subtotal, &o.Shipping, &o.Tax, &o.Total,
			&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	itemsByOrder, err := r.itemsForOrders(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

// itemsForOrders fetches the line items of the given orders in one query.
func (r *orderRepository) itemsForOrders(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]model.OrderItem, error) {
	itemsByOrder := make(map[uuid.UUID][]model.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	query := `
		SELECT id, order_id, product_id, name, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("orders", len(orderIDs)).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return itemsByOrder, nil
}

// UpdateStatus sets an order's status.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1",
		id, status, time.Now(),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus sets an order's payment status.
func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE orders SET payment_status = $2, updated_at = $3 WHERE id = $1",
		id, status, time.Now(),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update payment status")
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

// Count returns the total number of orders.
func (r *orderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// TotalRevenue sums the totals of all non-cancelled orders.
func (r *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	query := "SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> $1"
	if err := r.pool.QueryRow(ctx, query, model.OrderStatusCancelled).Scan(&revenue); err != nil {
		r.logger.Error().Err(err).Msg("failed to sum revenue")
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return revenue, nil
}
