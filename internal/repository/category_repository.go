package repository

import (
	"context"
	"fmt"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves all categories with their derived product counts.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.image, c.created_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.ProductCount); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category.
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.image, c.created_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.ProductCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("category_id", id.String()).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

// Create inserts a new category.
func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
		INSERT INTO categories (id, name, description, image, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Description, c.Image, c.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", c.ID.String()).Msg("failed to insert category")
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// Update replaces a category's mutable fields.
func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, image = $4
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Description, c.Image)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", c.ID.String()).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category. Products keep existing with a null
// category reference (ON DELETE SET NULL).
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

// Count returns the total number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count categories")
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
