package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// OrderStatuses lists all recognised order statuses in display order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Order represents a customer order.
type Order struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	UserID        uuid.UUID   `json:"userId" db:"user_id"`
	Items         []OrderItem `json:"items,omitempty"`
	Address       Address     `json:"shippingAddress"`
	Subtotal      float64     `json:"subtotal" db:"subtotal"`
	Shipping      float64     `json:"shipping" db:"shipping"`
	Tax           float64     `json:"tax" db:"tax"`
	Total         float64     `json:"total" db:"total"`
	Status        string      `json:"status" db:"status"`
	PaymentStatus string      `json:"paymentStatus" db:"payment_status"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item with the price captured at purchase time.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Quantity  int       `json:"quantity" db:"quantity"`
}

// Address is a shipping address.
type Address struct {
	Line1      string `json:"line1" db:"address_line1"`
	Line2      string `json:"line2,omitempty" db:"address_line2"`
	City       string `json:"city" db:"address_city"`
	PostalCode string `json:"postalCode" db:"address_postal_code"`
	Country    string `json:"country" db:"address_country"`
}

// OrderRequest represents the payload for creating an order.
type OrderRequest struct {
	Items    []OrderItemRequest `json:"items"`
	Address  Address            `json:"shippingAddress"`
	Shipping float64            `json:"shipping"`
	Tax      float64            `json:"tax"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// OrderStatusRequest represents the admin payload for a status change.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// PaymentStatusRequest represents the payload for a payment status change.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// ValidOrderStatus reports whether s is a recognised order status.
func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether s is a recognised payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid || s == PaymentStatusFailed
}

// NextStatusOptions returns every status except the current one. The
// admin panel offers all of them; transitions are not restricted to a
// forward-only ordering, so delivered orders can be moved back to
// pending. Whether that should stay allowed is an open policy question.
func NextStatusOptions(current string) []string {
	options := make([]string, 0, len(OrderStatuses)-1)
	for _, status := range OrderStatuses {
		if status != current {
			options = append(options, status)
		}
	}
	return options
}
