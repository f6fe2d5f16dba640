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

// wishlistService implements WishlistService.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "wishlist").Logger(),
	}
}

func (s *wishlistService) Get(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get wishlist")
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	if items == nil {
		items = []model.WishlistItem{}
	}
	return items, nil
}

// Add puts a product on the wishlist. Adding a product already present
// is a no-op, so the wishlist stays duplicate-free.
func (s *wishlistService) Add(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to look up product")
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	item := &model.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	if err := s.wishlistRepo.Add(ctx, item); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to add to wishlist")
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}

	return nil
}

func (s *wishlistService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.wishlistRepo.Delete(ctx, userID, productID); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to remove from wishlist")
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	return nil
}

func (s *wishlistService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.wishlistRepo.Clear(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear wishlist")
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}
