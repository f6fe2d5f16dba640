package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, description, price, discount, category_id, image, in_stock, rating, featured, created_at, updated_at"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves products matching the filter with pagination.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = "+arg(*filter.CategoryID))
	}
	if filter.Query != "" {
		placeholder := arg("%" + strings.ToLower(filter.Query) + "%")
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}
	if filter.Featured != nil {
		conditions = append(conditions, "featured = "+arg(*filter.Featured))
	}
	if filter.ExcludeID != nil {
		conditions = append(conditions, "id <> "+arg(*filter.ExcludeID))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.SortNewest {
		query += " ORDER BY created_at DESC"
	} else {
		query += " ORDER BY name"
	}
	query += fmt.Sprintf(" LIMIT %s OFFSET %s", arg(filter.Limit), arg(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Discount, &p.CategoryID,
		&p.Image, &p.InStock, &p.Rating, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := "SELECT " + productColumns + " FROM products WHERE id = ANY($1) ORDER BY name"

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, discount, category_id, image, in_stock, rating, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Discount, p.CategoryID,
		p.Image, p.InStock, p.Rating, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID.String()).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update replaces a product's mutable fields.
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, discount = $5, category_id = $6,
		    image = $7, in_stock = $8, featured = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Discount, p.CategoryID,
		p.Image, p.InStock, p.Featured, time.Now(),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID.String()).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Count returns the total number of products.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// scanProducts drains a product result set.
func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Discount, &p.CategoryID,
			&p.Image, &p.InStock, &p.Rating, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
