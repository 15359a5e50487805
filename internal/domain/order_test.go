package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderPending.Valid())
	assert.True(t, OrderConfirmed.Valid())
	assert.True(t, OrderShipped.Valid())
	assert.True(t, OrderDelivered.Valid())

	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	allowed := map[OrderStatus]OrderStatus{
		OrderPending:   OrderConfirmed,
		OrderConfirmed: OrderShipped,
		OrderShipped:   OrderDelivered,
	}

	statuses := []OrderStatus{OrderPending, OrderConfirmed, OrderShipped, OrderDelivered}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	// delivered — терминальный статус
	for _, to := range statuses {
		assert.False(t, OrderDelivered.CanTransitionTo(to))
	}
}
