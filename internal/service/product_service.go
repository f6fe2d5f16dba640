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

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	uploadsBase string
	logger      zerolog.Logger
}

// NewProductService creates a new product service. Relative image
// paths in responses are resolved against uploadsBase.
func NewProductService(productRepo repository.ProductRepository, uploadsBase string, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		uploadsBase: uploadsBase,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products matching the filter with pagination.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", filter.Limit).
			Int("offset", filter.Offset).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", filter.Limit).
		Int("offset", filter.Offset).
		Msg("retrieved products")

	for i := range products {
		products[i].Image = resolveImageURL(s.uploadsBase, products[i].Image)
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	product.Image = resolveImageURL(s.uploadsBase, product.Image)

	return product, nil
}

// Related retrieves products sharing a category, excluding the given product.
func (s *productService) Related(ctx context.Context, id uuid.UUID, limit int) ([]model.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.CategoryID == nil {
		return []model.Product{}, nil
	}

	if limit <= 0 || limit > 100 {
		limit = 4
	}

	return s.List(ctx, model.ProductFilter{
		CategoryID: product.CategoryID,
		ExcludeID:  &product.ID,
		Limit:      limit,
	})
}

// Create inserts a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		InStock:     req.InStock,
		Featured:    req.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID.String()).Msg("product created")

	product.Image = resolveImageURL(s.uploadsBase, product.Image)

	return product, nil
}

// Update replaces a product's mutable fields.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Discount = req.Discount
	product.CategoryID = req.CategoryID
	product.Image = req.Image
	product.InStock = req.InStock
	product.Featured = req.Featured

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")

	product.Image = resolveImageURL(s.uploadsBase, product.Image)

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return err
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

// validateProductRequest validates a create/update payload.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return fmt.Errorf("product request is nil")
	}
	if req.Name == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Product name is required")
	}
	if req.Price < 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Product price cannot be negative")
	}
	if req.Discount < 0 || req.Discount > 100 {
		return model.NewDomainError(model.ErrCodeMissingField, "Discount must be between 0 and 100")
	}
	return nil
}
