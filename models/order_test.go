package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"placed to confirmed", OrderStatusPlaced, OrderStatusConfirmed, true},
		{"placed to cancelled", OrderStatusPlaced, OrderStatusCancelled, true},
		{"placed to shipped skips confirmation", OrderStatusPlaced, OrderStatusShipped, false},
		{"placed to delivered skips everything", OrderStatusPlaced, OrderStatusDelivered, false},
		{"confirmed to shipped", OrderStatusConfirmed, OrderStatusShipped, true},
		{"confirmed to cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped to cancelled is too late", OrderStatusShipped, OrderStatusCancelled, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusConfirmed, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusConfirmed, false},
		{"no backwards moves", OrderStatusConfirmed, OrderStatusPlaced, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReturnStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ReturnStatus
		to      ReturnStatus
		allowed bool
	}{
		{"requested to approved", ReturnStatusRequested, ReturnStatusApproved, true},
		{"requested to rejected", ReturnStatusRequested, ReturnStatusRejected, true},
		{"requested to completed skips approval", ReturnStatusRequested, ReturnStatusCompleted, false},
		{"approved to picked up", ReturnStatusApproved, ReturnStatusPickedUp, true},
		{"approved to completed for self-ship", ReturnStatusApproved, ReturnStatusCompleted, true},
		{"picked up to completed", ReturnStatusPickedUp, ReturnStatusCompleted, true},
		{"rejected is terminal", ReturnStatusRejected, ReturnStatusApproved, false},
		{"completed is terminal", ReturnStatusCompleted, ReturnStatusPickedUp, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
