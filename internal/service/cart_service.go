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

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the user's cart with products joined in.
func (s *cartService) Get(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// Add puts a product in the cart. An existing entry has its quantity
// incremented; the cart never holds two entries for one product.
func (s *cartService) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to look up product")
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	now := time.Now()
	item := &model.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to add to cart")
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Int("quantity", quantity).
		Msg("added to cart")

	return nil
}

// UpdateQuantity replaces an entry's quantity. A quantity below 1 is
// equivalent to removing the entry.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, userID, productID)
	}

	if err := s.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to update cart quantity")
		return err
	}

	return nil
}

// Remove deletes an entry; removing an absent entry is not an error.
func (s *cartService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, userID, productID); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove from cart")
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
