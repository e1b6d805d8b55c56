package service

import (
	"context"
)

// OrderEvent is emitted after a checkout commits, for async processing by
// the order worker (confirmation push, cart reconciliation).
type OrderEvent struct {
	RequestID         string   `json:"request_id,omitempty"` // For distributed tracing
	OrderID           string   `json:"order_id"`
	UserID            string   `json:"user_id"`
	Total             int64    `json:"total"` // Minor units
	PaymentMethod     string   `json:"payment_method"`
	Status            string   `json:"status"`
	ItemCount         int      `json:"item_count"`
	ConsumedProducts  []string `json:"consumed_products,omitempty"` // Cart item IDs consumed by the order
	EstimatedDelivery string   `json:"estimated_delivery,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order-placed event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
