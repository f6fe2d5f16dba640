package repository

import (
	"context"
	"fmt"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// ListByUser retrieves the user's cart with products joined in.
func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		       p.id, p.name, p.description, p.price, p.discount, p.category_id,
		       p.image, p.in_stock, p.rating, p.featured, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		var p model.Product
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Discount, &p.CategoryID,
			&p.Image, &p.InStock, &p.Rating, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.Product = &p
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// Upsert inserts a new entry or increments an existing entry's
// quantity. The (user_id, product_id) unique constraint keeps the cart
// at one row per product.
func (r *cartRepository) Upsert(ctx context.Context, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", item.UserID.String()).
			Str("product_id", item.ProductID.String()).
			Msg("failed to upsert cart item")
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

// SetQuantity replaces the quantity of an existing entry.
func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	query := `
		UPDATE cart_items SET quantity = $3, updated_at = NOW()
		WHERE user_id = $1 AND product_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, userID, productID, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to update cart quantity")
		return fmt.Errorf("failed to update cart quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes an entry. Deleting an absent entry is not an error.
func (r *cartRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2",
		userID, productID,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to delete cart item")
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return nil
}

// Clear empties the user's cart.
func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
