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

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	uploadsBase  string
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service. Relative image
// paths in responses are resolved against uploadsBase.
func NewCategoryService(categoryRepo repository.CategoryRepository, uploadsBase string, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		uploadsBase:  uploadsBase,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories with product counts.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	for i := range categories {
		categories[i].Image = resolveImageURL(s.uploadsBase, categories[i].Image)
	}
	return categories, nil
}

// GetByID retrieves a single category.
func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to get category")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, model.ErrCategoryNotFound
	}
	category.Image = resolveImageURL(s.uploadsBase, category.Image)
	return category, nil
}

// Create inserts a new category.
func (s *categoryService) Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	if req == nil || req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Category name is required")
	}

	category := &model.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Str("category_id", category.ID.String()).Msg("category created")

	category.Image = resolveImageURL(s.uploadsBase, category.Image)

	return category, nil
}

// Update replaces a category's mutable fields.
func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	if req == nil || req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Category name is required")
	}

	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Image = req.Image

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	category.Image = resolveImageURL(s.uploadsBase, category.Image)

	return category, nil
}

// Delete removes a category; products in it keep existing uncategorised.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to delete category")
		return err
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")

	return nil
}
