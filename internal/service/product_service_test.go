package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: uuid.New(), Name: "Product 1", Price: 10.00, CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Product 2", Price: 20.00, CreatedAt: time.Now()},
	}

	tests := []struct {
		name          string
		filter        model.ProductFilter
		expectedLimit int
	}{
		{
			name:          "Default limit applied",
			filter:        model.ProductFilter{},
			expectedLimit: 10,
		},
		{
			name:          "Limit passed through",
			filter:        model.ProductFilter{Limit: 25},
			expectedLimit: 25,
		},
		{
			name:          "Limit capped at maximum",
			filter:        model.ProductFilter{Limit: 500},
			expectedLimit: 100,
		},
		{
			name:          "Negative limit replaced",
			filter:        model.ProductFilter{Limit: -5},
			expectedLimit: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, "", logger)

			expected := tt.filter
			expected.Limit = tt.expectedLimit
			if expected.Offset < 0 {
				expected.Offset = 0
			}
			mockRepo.On("List", ctx, expected).Return(testProducts, nil)

			products, err := service.List(ctx, tt.filter)

			require.NoError(t, err)
			assert.Len(t, products, 2)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		mockRepo.On("GetByID", ctx, productID).Return(&model.Product{
			ID:   productID,
			Name: "Product",
		}, nil)

		product, err := service.GetByID(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		mockRepo.On("GetByID", ctx, productID).Return(nil, nil)

		product, err := service.GetByID(ctx, productID)

		require.Error(t, err)
		assert.Equal(t, model.ErrProductNotFound, err)
		assert.Nil(t, product)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		mockRepo.On("GetByID", ctx, productID).Return(nil, errors.New("database error"))

		product, err := service.GetByID(ctx, productID)

		require.Error(t, err)
		assert.Nil(t, product)
	})
}

func TestProductService_Related(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	productID := uuid.New()
	categoryID := uuid.New()

	t.Run("Shares category and excludes self", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		mockRepo.On("GetByID", ctx, productID).Return(&model.Product{
			ID:         productID,
			CategoryID: &categoryID,
		}, nil)
		mockRepo.On("List", ctx, model.ProductFilter{
			CategoryID: &categoryID,
			ExcludeID:  &productID,
			Limit:      4,
		}).Return([]model.Product{{ID: uuid.New()}}, nil)

		products, err := service.Related(ctx, productID, 0)

		require.NoError(t, err)
		assert.Len(t, products, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Uncategorised product has no related products", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		mockRepo.On("GetByID", ctx, productID).Return(&model.Product{ID: productID}, nil)

		products, err := service.Related(ctx, productID, 4)

		require.NoError(t, err)
		assert.Empty(t, products)
		mockRepo.AssertNotCalled(t, "List")
	})
}

func TestProductService_ResolvesImageURLs(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Relative path gains the uploads base", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "/uploads", logger)

		mockRepo.On("GetByID", ctx, productID).Return(&model.Product{
			ID:    productID,
			Image: "products/lamp.jpg",
		}, nil)

		product, err := service.GetByID(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, "/uploads/products/lamp.jpg", product.Image)
	})

	t.Run("Absolute URL passes through", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "https://cdn.example.com/uploads", logger)

		mockRepo.On("List", ctx, mock.AnythingOfType("model.ProductFilter")).Return([]model.Product{
			{ID: uuid.New(), Image: "https://images.example.com/lamp.jpg"},
			{ID: uuid.New(), Image: "products/mug.jpg"},
			{ID: uuid.New()},
		}, nil)

		products, err := service.List(ctx, model.ProductFilter{})

		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "https://images.example.com/lamp.jpg", products[0].Image)
		assert.Equal(t, "https://cdn.example.com/uploads/products/mug.jpg", products[1].Image)
		assert.Empty(t, products[2].Image)
	})
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

		product, err := service.Create(ctx, &model.ProductRequest{
			Name:  "Product",
			Price: 19.99,
		})

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.NotEqual(t, uuid.Nil, product.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Validation errors", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, "", logger)

		tests := []struct {
			name string
			req  *model.ProductRequest
		}{
			{"Nil request", nil},
			{"Missing name", &model.ProductRequest{Price: 10}},
			{"Negative price", &model.ProductRequest{Name: "P", Price: -1}},
			{"Discount above 100", &model.ProductRequest{Name: "P", Price: 10, Discount: 150}},
			{"Negative discount", &model.ProductRequest{Name: "P", Price: 10, Discount: -5}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				product, err := service.Create(ctx, tt.req)
				require.Error(t, err)
				assert.Nil(t, product)
			})
		}

		mockRepo.AssertNotCalled(t, "Create")
	})
}
