package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusOptions(t *testing.T) {
	options := NextStatusOptions(OrderStatusShipped)

	assert.Len(t, options, 4)
	assert.NotContains(t, options, OrderStatusShipped)
	assert.Contains(t, options, OrderStatusPending)
	assert.Contains(t, options, OrderStatusCancelled)
}

// A delivered order can still be offered "pending" as a next status.
// Restricting transitions to a forward-only state machine is an open
// policy question; this test records the current behaviour rather than
// forbidding it.
func TestNextStatusOptions_DeliveredOffersPending(t *testing.T) {
	options := NextStatusOptions(OrderStatusDelivered)
	assert.Contains(t, options, OrderStatusPending)
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus("returned"))
	assert.False(t, ValidOrderStatus(""))
}
