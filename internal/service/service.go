package service

import (
	"context"

	"shopfront/internal/i18n"
	"shopfront/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue products.
type ProductService interface {
	// List retrieves products matching the filter with pagination.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Related retrieves products sharing a category, excluding the given product.
	Related(ctx context.Context, id uuid.UUID, limit int) ([]model.Product, error)

	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryService defines operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req *model.CategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines operations for the server-side cart.
type CartService interface {
	// Get retrieves the user's cart with products joined in.
	Get(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)

	// Add puts a product in the cart, incrementing the quantity when
	// an entry already exists. Requires quantity >= 1.
	Add(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// UpdateQuantity replaces an entry's quantity. A quantity below 1
	// removes the entry instead.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// Remove deletes an entry; removing an absent entry is not an error.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// Clear empties the cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// WishlistService defines operations for the server-side wishlist.
type WishlistService interface {
	Get(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// OrderService defines operations for orders.
type OrderService interface {
	// Create places an order for the user and clears their server cart.
	Create(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.Order, error)

	// GetForUser retrieves an order visible to the caller: owners see
	// their own orders, admins see all.
	GetForUser(ctx context.Context, id, userID uuid.UUID, admin bool) (*model.Order, error)

	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus sets the order status. Any valid status is accepted
	// regardless of the current one.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error
}

// UserService defines admin operations on accounts.
type UserService interface {
	List(ctx context.Context, limit, offset int) ([]model.User, error)

	// GetDetail retrieves a user with their orders embedded.
	GetDetail(ctx context.Context, id uuid.UUID) (*model.UserDetail, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// AuthService defines session operations.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// Verify resolves a bearer token to its user.
	Verify(ctx context.Context, token string) (*model.User, error)

	// Logout revokes the token server-side, best-effort.
	Logout(ctx context.Context, token string)
}

// TranslationService defines operations for the translation store.
type TranslationService interface {
	Languages(ctx context.Context) ([]model.Language, error)

	// Bundle returns the nested translation mapping for a language:
	// the preloaded file bundle overlaid with database entries.
	Bundle(ctx context.Context, language string) (i18n.Bundle, error)

	List(ctx context.Context, limit, offset int) ([]model.Translation, error)
	Upsert(ctx context.Context, req *model.TranslationRequest) (*model.Translation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsService defines the admin dashboard summary.
type StatsService interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}
