package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartItem_Subtotal(t *testing.T) {
	item := CartItem{
		ProductID: uuid.New(),
		Quantity:  3,
		Product:   &Product{Price: 20.00, Discount: 10},
	}

	// 20.00 * 0.9 = 18.00 per unit
	assert.InDelta(t, 54.00, item.Subtotal(), 0.0001)
}

func TestCartItem_SubtotalWithoutProduct(t *testing.T) {
	item := CartItem{Quantity: 2}
	assert.Equal(t, 0.0, item.Subtotal())
}

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{Quantity: 1, Product: &Product{Price: 10.00}},
		{Quantity: 2, Product: &Product{Price: 5.50, Discount: 50}},
	}

	// 10.00 + 2*2.75 = 15.50
	assert.InDelta(t, 15.50, CartTotal(items), 0.0001)
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
}
