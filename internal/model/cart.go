package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents a single cart entry. At most one entry exists
// per (user, product) pair; adding an existing product increments the
// quantity instead of creating a second row.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"-" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`

	// Product is joined in for responses.
	Product *Product `json:"product,omitempty"`
}

// Subtotal returns the line total using the discounted unit price.
func (c *CartItem) Subtotal() float64 {
	if c.Product == nil {
		return 0
	}
	return Round2(c.Product.DiscountedPrice() * float64(c.Quantity))
}

// AddToCartRequest represents the payload for adding a product to the cart.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemRequest represents the payload for changing a quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartTotal sums the discounted line totals of the given items,
// rounded to 2 decimal places.
func CartTotal(items []CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].Subtotal()
	}
	return Round2(total)
}
