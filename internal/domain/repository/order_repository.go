package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderPlacement describes a single checkout commit. The store must apply
// the whole placement atomically: either the order document, the idempotency
// record and the cart deletions all happen, or none of them do.
type OrderPlacement struct {
	// Order is the record to create. Its ID is assigned by the store and
	// its CreatedAt is the server timestamp.
	Order *entity.Order

	// IdempotencyKey is the caller-supplied token for this checkout
	// attempt. If a placement with the same key was already committed for
	// this user, no new order is written and the previous order ID is
	// returned with AlreadyPlaced set.
	IdempotencyKey string

	// ConsumeProductIDs lists the cart item IDs to delete in the same
	// transaction. Empty for buy-now placements.
	ConsumeProductIDs []string
}

// PlacementResult reports the outcome of a placement.
type PlacementResult struct {
	OrderID       string // ID of the created (or previously created) order.
	AlreadyPlaced bool   // True when the idempotency key was already used.
}

// OrderRepository defines the interface for immutable order records.
type OrderRepository interface {
	// PlaceOrder atomically commits a checkout: order write, idempotency
	// record and cart-item deletions in one transaction. On any failure
	// nothing is written and the cart is left untouched.
	PlaceOrder(ctx context.Context, placement *OrderPlacement) (*PlacementResult, error)

	// FindOrderByID retrieves an order by its document ID.
	FindOrderByID(ctx context.Context, orderID string) (*entity.Order, error)

	// ListOrdersByUser retrieves all orders owned by a user, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
