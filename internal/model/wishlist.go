package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem represents a single wishlist entry. Like cart entries,
// at most one exists per (user, product) pair; there is no quantity.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"-" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"addedAt" db:"created_at"`

	Product *Product `json:"product,omitempty"`
}

// AddToWishlistRequest represents the payload for adding a product.
type AddToWishlistRequest struct {
	ProductID uuid.UUID `json:"productId"`
}
