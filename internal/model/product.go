package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Product represents an item in the store catalogue.
type Product struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	Discount    int        `json:"discount" db:"discount"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty" db:"category_id"`
	Image       string     `json:"image" db:"image"`
	InStock     bool       `json:"inStock" db:"in_stock"`
	Rating      float64    `json:"rating" db:"rating"`
	Featured    bool       `json:"featured" db:"featured"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// DiscountedPrice returns the display price after applying the
// percentage discount, rounded to 2 decimal places.
func (p *Product) DiscountedPrice() float64 {
	if p.Discount <= 0 {
		return Round2(p.Price)
	}
	return Round2(p.Price * (1 - float64(p.Discount)/100))
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Discount    int        `json:"discount"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Image       string     `json:"image"`
	InStock     bool       `json:"inStock"`
	Featured    bool       `json:"featured"`
}

// ProductFilter holds the optional filters for product listings.
type ProductFilter struct {
	CategoryID *uuid.UUID
	Query      string
	Featured   *bool
	ExcludeID  *uuid.UUID
	SortNewest bool
	Limit      int
	Offset     int
}
