package service

import (
	"context"
	"errors"
	"testing"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_Add(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockWishlistRepo := new(MockWishlistRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewWishlistService(mockWishlistRepo, mockProductRepo, logger)

		mockProductRepo.On("GetByID", ctx, productID).Return(&model.Product{
			ID:    productID,
			Name:  "Product",
			Price: 10.00,
		}, nil)
		mockWishlistRepo.On("Add", ctx, mock.AnythingOfType("*model.WishlistItem")).Return(nil)

		err := service.Add(ctx, userID, productID)

		require.NoError(t, err)
		mockWishlistRepo.AssertExpectations(t)
	})

	t.Run("Adding twice stays a single entry", func(t *testing.T) {
		mockWishlistRepo := new(MockWishlistRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewWishlistService(mockWishlistRepo, mockProductRepo, logger)

		mockProductRepo.On("GetByID", ctx, productID).Return(&model.Product{ID: productID}, nil)
		// The repository's conflict handling makes the second add a
		// no-op; the service reports success both times.
		mockWishlistRepo.On("Add", ctx, mock.AnythingOfType("*model.WishlistItem")).Return(nil).Twice()
		mockWishlistRepo.On("ListByUser", ctx, userID).Return([]model.WishlistItem{
			{ID: uuid.New(), UserID: userID, ProductID: productID},
		}, nil)

		require.NoError(t, service.Add(ctx, userID, productID))
		require.NoError(t, service.Add(ctx, userID, productID))

		items, err := service.Get(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		mockWishlistRepo.AssertExpectations(t)
	})

	t.Run("Unknown product rejected", func(t *testing.T) {
		mockWishlistRepo := new(MockWishlistRepository)
		mockProductRepo := new(MockProductRepository)
		service := NewWishlistService(mockWishlistRepo, mockProductRepo, logger)

		mockProductRepo.On("GetByID", ctx, productID).Return(nil, nil)

		err := service.Add(ctx, userID, productID)

		require.Error(t, err)
		assert.Equal(t, model.ErrProductNotFound, err)
		mockWishlistRepo.AssertNotCalled(t, "Add")
	})
}

func TestWishlistService_Get(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Empty wishlist returns empty slice", func(t *testing.T) {
		mockWishlistRepo := new(MockWishlistRepository)
		service := NewWishlistService(mockWishlistRepo, new(MockProductRepository), logger)

		mockWishlistRepo.On("ListByUser", ctx, userID).Return(nil, nil)

		items, err := service.Get(ctx, userID)

		require.NoError(t, err)
		require.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockWishlistRepo := new(MockWishlistRepository)
		service := NewWishlistService(mockWishlistRepo, new(MockProductRepository), logger)

		mockWishlistRepo.On("ListByUser", ctx, userID).Return(nil, errors.New("database error"))

		items, err := service.Get(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestWishlistService_Remove_AbsentEntryIsNotAnError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockWishlistRepo := new(MockWishlistRepository)
	service := NewWishlistService(mockWishlistRepo, new(MockProductRepository), logger)

	mockWishlistRepo.On("Delete", ctx, userID, productID).Return(nil)

	require.NoError(t, service.Remove(ctx, userID, productID))
	mockWishlistRepo.AssertExpectations(t)
}

func TestWishlistService_Clear(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	mockWishlistRepo := new(MockWishlistRepository)
	service := NewWishlistService(mockWishlistRepo, new(MockProductRepository), logger)

	mockWishlistRepo.On("Clear", ctx, userID).Return(nil)

	require.NoError(t, service.Clear(ctx, userID))
	mockWishlistRepo.AssertExpectations(t)
}
