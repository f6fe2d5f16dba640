package model

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a product category.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	// ProductCount is derived from the products table, never stored.
	ProductCount int       `json:"productCount" db:"product_count"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CategoryRequest represents the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
