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

func validAddress() model.Address {
	return model.Address{
		Line1:      "12 High Street",
		City:       "Lahore",
		PostalCode: "54000",
		Country:    "PK",
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	p1 := uuid.New()
	p2 := uuid.New()

	req := &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: p1, Quantity: 2},
			{ProductID: p2, Quantity: 1},
		},
		Address:  validAddress(),
		Shipping: 5.00,
		Tax:      2.50,
	}

	testProducts := []model.Product{
		{ID: p1, Name: "Product 1", Price: 10.00, Discount: 10, CreatedAt: time.Now()},
		{ID: p2, Name: "Product 2", Price: 20.00, CreatedAt: time.Now()},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{p1, p2}).Return(testProducts, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockCartRepo.On("Clear", ctx, userID).Return(nil)

	order, err := service.Create(ctx, userID, req)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Len(t, order.Items, 2)
	// 2 x 9.00 (10% off 10.00) + 1 x 20.00
	assert.Equal(t, 38.00, order.Subtotal)
	assert.Equal(t, 45.50, order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 9.00, order.Items[0].Price)

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_Create_CartClearFailureIsNotFatal(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	req := &model.OrderRequest{
		Items:   []model.OrderItemRequest{{ProductID: productID, Quantity: 1}},
		Address: validAddress(),
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{productID}).Return([]model.Product{
		{ID: productID, Name: "Product", Price: 15.00},
	}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)
	mockCartRepo.On("Clear", ctx, userID).Return(errors.New("connection reset"))

	order, err := service.Create(ctx, userID, req)

	require.NoError(t, err)
	require.NotNil(t, order)
}

func TestOrderService_Create_ProductNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	req := &model.OrderRequest{
		Items:   []model.OrderItemRequest{{ProductID: productID, Quantity: 1}},
		Address: validAddress(),
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{productID}).Return([]model.Product{}, nil)

	order, err := service.Create(ctx, userID, req)

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, order)

	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_Create_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, logger)

	tests := []struct {
		name        string
		req         *model.OrderRequest
		expectedErr error
	}{
		{
			name: "Nil request",
			req:  nil,
		},
		{
			name: "Empty items",
			req:  &model.OrderRequest{Items: []model.OrderItemRequest{}, Address: validAddress()},
		},
		{
			name: "Zero quantity",
			req: &model.OrderRequest{
				Items:   []model.OrderItemRequest{{ProductID: productID, Quantity: 0}},
				Address: validAddress(),
			},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name: "Negative quantity",
			req: &model.OrderRequest{
				Items:   []model.OrderItemRequest{{ProductID: productID, Quantity: -3}},
				Address: validAddress(),
			},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name: "Negative shipping",
			req: &model.OrderRequest{
				Items:    []model.OrderItemRequest{{ProductID: productID, Quantity: 1}},
				Address:  validAddress(),
				Shipping: -1,
			},
			expectedErr: model.ErrInvalidTotal,
		},
		{
			name: "Missing address",
			req: &model.OrderRequest{
				Items: []model.OrderItemRequest{{ProductID: productID, Quantity: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.Create(ctx, userID, tt.req)

			require.Error(t, err)
			assert.Nil(t, order)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			}
		})
	}

	mockOrderRepo.AssertNotCalled(t, "BeginTx")
	mockProductRepo.AssertNotCalled(t, "GetByIDs")
}

func TestOrderService_Create_TransactionRollback(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	req := &model.OrderRequest{
		Items:   []model.OrderItemRequest{{ProductID: productID, Quantity: 1}},
		Address: validAddress(),
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, logger)

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{productID}).Return([]model.Product{
		{ID: productID, Name: "Product", Price: 10.00},
	}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("database error"))
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.Create(ctx, userID, req)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, mockTx.rolledBack)

	mockCartRepo.AssertNotCalled(t, "Clear")
	mockTx.AssertNotCalled(t, "Commit")
}

func TestOrderService_GetForUser(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	ownerID := uuid.New()
	strangerID := uuid.New()
	orderID := uuid.New()

	order := &model.Order{
		ID:     orderID,
		UserID: ownerID,
		Status: model.OrderStatusPending,
	}

	tests := []struct {
		name        string
		callerID    uuid.UUID
		admin       bool
		mockOrder   *model.Order
		mockError   error
		expectErr   error
		expectOrder bool
	}{
		{
			name:        "Owner sees own order",
			callerID:    ownerID,
			mockOrder:   order,
			expectOrder: true,
		},
		{
			name:      "Stranger gets not found",
			callerID:  strangerID,
			mockOrder: order,
			expectErr: model.ErrOrderNotFound,
		},
		{
			name:        "Admin sees any order",
			callerID:    strangerID,
			admin:       true,
			mockOrder:   order,
			expectOrder: true,
		},
		{
			name:      "Missing order",
			callerID:  ownerID,
			mockOrder: nil,
			expectErr: model.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), logger)

			mockOrderRepo.On("GetByID", ctx, orderID).Return(tt.mockOrder, tt.mockError)

			got, err := service.GetForUser(ctx, orderID, tt.callerID, tt.admin)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectErr, err)
				return
			}
			require.NoError(t, err)
			if tt.expectOrder {
				require.NotNil(t, got)
				assert.Equal(t, orderID, got.ID)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Valid transition", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), logger)

		mockOrderRepo.On("GetByID", ctx, orderID).Return(&model.Order{
			ID:     orderID,
			Status: model.OrderStatusPending,
		}, nil)
		mockOrderRepo.On("UpdateStatus", ctx, orderID, model.OrderStatusShipped).Return(nil)

		err := service.UpdateStatus(ctx, orderID, model.OrderStatusShipped)

		require.NoError(t, err)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), logger)

		err := service.UpdateStatus(ctx, orderID, "misplaced")

		require.Error(t, err)
		assert.Equal(t, model.ErrInvalidStatus, err)
		mockOrderRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Missing order", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), logger)

		mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil)

		err := service.UpdateStatus(ctx, orderID, model.OrderStatusShipped)

		require.Error(t, err)
		assert.Equal(t, model.ErrOrderNotFound, err)
	})
}
