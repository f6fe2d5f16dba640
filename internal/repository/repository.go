package repository

import (
	"context"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the filter with pagination.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, p *model.Product) error

	// Update replaces a product's mutable fields.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of products.
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// List retrieves all categories with their derived product counts.
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)

	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.User, error)

	// GetByID retrieves a user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	Create(ctx context.Context, u *model.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Count(ctx context.Context) (int, error)
}

// CartRepository defines the interface for cart data access operations.
// Rows are unique per (user, product).
type CartRepository interface {
	// ListByUser retrieves the user's cart with products joined in.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)

	// Upsert inserts a new entry or increments the quantity of an
	// existing one by item.Quantity.
	Upsert(ctx context.Context, item *model.CartItem) error

	// SetQuantity replaces the quantity of an existing entry.
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// Delete removes an entry; deleting an absent entry is not an error.
	Delete(ctx context.Context, userID, productID uuid.UUID) error

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// WishlistRepository defines the interface for wishlist data access operations.
type WishlistRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)

	// Add inserts an entry; adding a product already present is a no-op.
	Add(ctx context.Context, item *model.WishlistItem) error

	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order with its items. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// ListByUser retrieves a user's orders, newest first, items included.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Order, error)

	// ListAll retrieves all orders, newest first, items included.
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error
	Count(ctx context.Context) (int, error)

	// TotalRevenue sums the totals of all non-cancelled orders.
	TotalRevenue(ctx context.Context) (float64, error)
}

// TranslationRepository defines the interface for translation data access operations.
type TranslationRepository interface {
	ListLanguages(ctx context.Context) ([]model.Language, error)

	// ListByLanguage retrieves all entries for one language.
	ListByLanguage(ctx context.Context, language string) ([]model.Translation, error)

	// List retrieves entries across languages with pagination.
	List(ctx context.Context, limit, offset int) ([]model.Translation, error)

	// Upsert inserts or replaces the entry for (language, key).
	Upsert(ctx context.Context, t *model.Translation) error

	Delete(ctx context.Context, id uuid.UUID) error
}
