package repository

import (
	"context"
	"fmt"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// wishlistRepository implements the WishlistRepository interface using PostgreSQL.
type wishlistRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(pool *pgxpool.Pool, logger zerolog.Logger) WishlistRepository {
	return &wishlistRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "wishlist").Logger(),
	}
}

// ListByUser retrieves the user's wishlist with products joined in.
func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	query := `
		SELECT wi.id, wi.user_id, wi.product_id, wi.created_at,
		       p.id, p.name, p.description, p.price, p.discount, p.category_id,
		       p.image, p.in_stock, p.rating, p.featured, p.created_at, p.updated_at
		FROM wishlist_items wi
		JOIN products p ON p.id = wi.product_id
		WHERE wi.user_id = $1
		ORDER BY wi.created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query wishlist")
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}
	defer rows.Close()

	var items []model.WishlistItem
	for rows.Next() {
		var item model.WishlistItem
		var p model.Product
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Discount, &p.CategoryID,
			&p.Image, &p.InStock, &p.Rating, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan wishlist row")
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		item.Product = &p
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating wishlist rows")
		return nil, fmt.Errorf("error iterating wishlist items: %w", err)
	}

	return items, nil
}

// Add inserts an entry; adding a product already present is a no-op.
func (r *wishlistRepository) Add(ctx context.Context, item *model.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items (id, user_id, product_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, item.ID, item.UserID, item.ProductID, item.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", item.UserID.String()).
			Str("product_id", item.ProductID.String()).
			Msg("failed to add wishlist item")
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

// Delete removes an entry. Deleting an absent entry is not an error.
func (r *wishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2",
		userID, productID,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to delete wishlist item")
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	return nil
}

// Clear empties the user's wishlist.
func (r *wishlistRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM wishlist_items WHERE user_id = $1", userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear wishlist")
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}

	return nil
}
